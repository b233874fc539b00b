package models

import (
	"time"

	"gorm.io/gorm"
)

type CategoryModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type SocialPlatformModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"size:50;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// BankModel swift uniqueness among live rows is a partial index in
// db/migrations.
type BankModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"size:50;not null"`
	Swift     string `gorm:"size:11;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type CouponModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Percentage int
	Code       string `gorm:"size:10;index"`
	Start      *time.Time
	End        *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
