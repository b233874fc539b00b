package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
)

// InfluencerModel IBAN uniqueness among live rows is enforced by a partial
// index in db/migrations.
type InfluencerModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	Name              string `gorm:"size:50;not null"`
	Gender            domain.Gender
	CategoryID        *string        `gorm:"type:uuid"`
	Category          *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Phone             string
	Email             string
	BankID            *string    `gorm:"type:uuid"`
	Bank              *BankModel `gorm:"foreignKey:BankID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	IBAN              string     `gorm:"size:34"`
	AccountHolderName string     `gorm:"size:50"`
	City              string
	Branch            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

type SocialAccountModel struct {
	ID           string              `gorm:"primaryKey;type:uuid"`
	Username     string              `gorm:"size:50;not null"`
	PlatformID   string              `gorm:"type:uuid;not null"`
	Platform     SocialPlatformModel `gorm:"foreignKey:PlatformID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	InfluencerID string              `gorm:"type:uuid;not null;index"`
	Influencer   InfluencerModel     `gorm:"foreignKey:InfluencerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Cost         float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
