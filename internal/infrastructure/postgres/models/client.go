package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
)

type ClientModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	Name             string `gorm:"size:50;not null"`
	Email            string
	AccountManagerID string    `gorm:"type:uuid;not null;index"`
	AccountManager   UserModel `gorm:"foreignKey:AccountManagerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Phone            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

type OfferModel struct {
	ID         string        `gorm:"primaryKey;type:uuid"`
	Name       string        `gorm:"size:50;not null"`
	ClientID   string        `gorm:"type:uuid;not null;index"`
	Client     ClientModel   `gorm:"foreignKey:ClientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CategoryID string        `gorm:"type:uuid;not null"`
	Category   CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Billing    domain.OfferBilling
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

type CampaignModel struct {
	ID               string     `gorm:"primaryKey;type:uuid"`
	OfferID          string     `gorm:"type:uuid;not null;index"`
	Offer            OfferModel `gorm:"foreignKey:OfferID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	AccountManagerID string     `gorm:"type:uuid;not null;index"`
	AccountManager   UserModel  `gorm:"foreignKey:AccountManagerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CostFixed        float64
	CostPercentage   float64
	DiscountPercent  float64
	Start            *time.Time `gorm:"index:idx_campaign_window"`
	End              *time.Time `gorm:"index:idx_campaign_window"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
