package domain

import "time"

type AssignmentBilling string

const (
	// REVENUE_SHARE_FIXED pays a fixed amount per item sold,
	// REVENUE_SHARE_PERCENTAGE pays a share of total revenue.
	AssignmentFixedCost              AssignmentBilling = "FIXED_COST"
	AssignmentRevenueShareFixed      AssignmentBilling = "REVENUE_SHARE_FIXED"
	AssignmentRevenueSharePercentage AssignmentBilling = "REVENUE_SHARE_PERCENTAGE"
)

// AssignedInfluencer links a social account and influencer to a campaign for
// a given day with agreed billing terms.
type AssignedInfluencer struct {
	ID              string
	SocialAccountID string
	InfluencerID    string
	CampaignID      string
	CouponID        string
	Billing         AssignmentBilling
	Cost            float64
	Discount        int
	Day             time.Time

	// InfluencerName is populated on reads that join the influencer row.
	// It feeds the digest line rendered for finance.
	InfluencerName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type HistoryDataType string

const (
	RawData       HistoryDataType = "RAW_DATA"
	ValidatedData HistoryDataType = "VALIDATED_DATA"
)

// InfluencerHistory is a sales figure an influencer reported against an
// assignment. RAW_DATA is a figure still to be achieved, VALIDATED_DATA is
// final.
type InfluencerHistory struct {
	ID                   string
	AssignedInfluencerID string
	DataType             HistoryDataType
	NoSales              float64
	DaySales             time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type BillingStatus string

const (
	BillingUnpaid BillingStatus = "UNPAID"
	BillingPaid   BillingStatus = "PAID"
)

// InfluencerPayment reconciles an assignment's cost. At most one per
// assignment; absence means the assignment is unpaid.
type InfluencerPayment struct {
	ID                   string
	AssignedInfluencerID string
	Day                  time.Time
	InvoiceURL           string
	BillingStatus        BillingStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// InfluencerUnPaidNotification is a denormalized snapshot recorded once per
// unique (influencer, cost, day) so finance is not re-notified for the same
// unpaid item.
type InfluencerUnPaidNotification struct {
	ID           string
	InfluencerID string
	Cost         float64
	Day          time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AssignmentRepository interface {
	Create(assignment *AssignedInfluencer) error
	Update(assignment *AssignedInfluencer) error
	GetByID(id string) (*AssignedInfluencer, error)
	List() ([]*AssignedInfluencer, error)
	ListByCampaignID(campaignID string) ([]*AssignedInfluencer, error)
	ListByInfluencerID(influencerID string) ([]*AssignedInfluencer, error)
	ListBySocialAccountID(socialAccountID string) ([]*AssignedInfluencer, error)
	// FindUnpaidBetween returns assignments whose day falls in [start, end]
	// inclusive and which either have no payment row or an UNPAID one.
	// Results are ordered by influencer for a stable digest.
	FindUnpaidBetween(start, end time.Time) ([]*AssignedInfluencer, error)
	// TotalSales sums no_sales over the assignment's history rows of the
	// given data type. Zero when there are none.
	TotalSales(assignmentID string, dataType HistoryDataType) (float64, error)
	SoftDelete(id string) error
}

type HistoryRepository interface {
	Create(history *InfluencerHistory) error
	Update(history *InfluencerHistory) error
	GetByID(id string) (*InfluencerHistory, error)
	ListByAssignmentID(assignmentID string) ([]*InfluencerHistory, error)
	SoftDelete(id string) error
}

type PaymentRepository interface {
	Create(payment *InfluencerPayment) error
	Update(payment *InfluencerPayment) error
	GetByID(id string) (*InfluencerPayment, error)
	GetByAssignmentID(assignmentID string) (*InfluencerPayment, error)
	List() ([]*InfluencerPayment, error)
	SoftDelete(id string) error
}

type NotificationRepository interface {
	// Exists checks for a live notification with the exact triple.
	Exists(influencerID string, cost float64, day time.Time) (bool, error)
	// Create inserts a notification row. ErrDuplicateNotification is
	// returned when the partial unique index rejects the triple, so a
	// concurrent double-run fails safely instead of duplicating.
	Create(notification *InfluencerUnPaidNotification) error
	GetByID(id string) (*InfluencerUnPaidNotification, error)
	List() ([]*InfluencerUnPaidNotification, error)
	SoftDelete(id string) error
}
