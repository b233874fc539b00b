package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/arabyads/influencer-service/internal/domain"
)

type AssignedInfluencerModel struct {
	ID              string             `gorm:"primaryKey;type:uuid"`
	SocialAccountID string             `gorm:"type:uuid;not null;index"`
	SocialAccount   SocialAccountModel `gorm:"foreignKey:SocialAccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	InfluencerID    string             `gorm:"type:uuid;not null;index"`
	Influencer      InfluencerModel    `gorm:"foreignKey:InfluencerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CampaignID      string             `gorm:"type:uuid;not null;index"`
	Campaign        CampaignModel      `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CouponID        string             `gorm:"type:uuid;not null"`
	Coupon          CouponModel        `gorm:"foreignKey:CouponID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Billing         domain.AssignmentBilling
	Cost            float64
	Discount        int
	// Day is the calendar date the payment is due; reconciliation windows
	// filter on it.
	Day       time.Time `gorm:"type:date;not null;index:idx_assignment_day"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type InfluencerHistoryModel struct {
	ID                   string                  `gorm:"primaryKey;type:uuid"`
	AssignedInfluencerID string                  `gorm:"type:uuid;not null;index"`
	AssignedInfluencer   AssignedInfluencerModel `gorm:"foreignKey:AssignedInfluencerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	DataType             domain.HistoryDataType
	NoSales              float64
	DaySales             time.Time `gorm:"type:date;not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

type InfluencerPaymentModel struct {
	ID                   string                  `gorm:"primaryKey;type:uuid"`
	AssignedInfluencerID string                  `gorm:"type:uuid;not null;uniqueIndex:idx_payment_assignment,where:deleted_at IS NULL"`
	AssignedInfluencer   AssignedInfluencerModel `gorm:"foreignKey:AssignedInfluencerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Day                  time.Time               `gorm:"type:date;not null"`
	InvoiceURL           string
	BillingStatus        domain.BillingStatus `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

// InfluencerUnPaidNotificationModel rows are unique per
// (influencer_id, cost, day) among live rows. The partial unique index lives
// in db/migrations; it makes the reconciliation job's check-then-insert safe
// against concurrent runs.
type InfluencerUnPaidNotificationModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	InfluencerID string          `gorm:"type:uuid;not null;index"`
	Influencer   InfluencerModel `gorm:"foreignKey:InfluencerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Cost         float64
	Day          time.Time `gorm:"type:date;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
