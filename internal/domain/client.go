package domain

import "time"

// Client provides offers for influencers to work on.
type Client struct {
	ID               string
	Name             string
	Email            string
	AccountManagerID string
	Phone            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OfferBilling string

const (
	OfferFixedPrice   OfferBilling = "FIXED_PRICE"
	OfferRevenueShare OfferBilling = "REVENUE_SHARE"
	OfferAgency       OfferBilling = "AGENCY"
)

// Offer is a marketing opportunity made by a client.
type Offer struct {
	ID         string
	Name       string
	ClientID   string
	CategoryID string
	Billing    OfferBilling
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Campaign represents a time period in an offer.
type Campaign struct {
	ID               string
	OfferID          string
	AccountManagerID string
	CostFixed        float64
	CostPercentage   float64
	DiscountPercent  float64
	Start            *time.Time
	End              *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ClientScope restricts list queries to rows visible to the requesting user.
// Staff users see everything; account managers see only their own rows.
type ClientScope struct {
	UserID string
	Staff  bool
}

type ClientRepository interface {
	Create(client *Client) error
	Update(client *Client) error
	GetByID(id string) (*Client, error)
	List(scope ClientScope) ([]*Client, error)
	SoftDelete(id string) error
}

type OfferRepository interface {
	Create(offer *Offer) error
	Update(offer *Offer) error
	GetByID(id string) (*Offer, error)
	List(scope ClientScope) ([]*Offer, error)
	ListByClientID(clientID string, scope ClientScope) ([]*Offer, error)
	SoftDelete(id string) error
}

type CampaignRepository interface {
	Create(campaign *Campaign) error
	Update(campaign *Campaign) error
	GetByID(id string) (*Campaign, error)
	List(scope ClientScope) ([]*Campaign, error)
	ListByOfferID(offerID string) ([]*Campaign, error)
	SoftDelete(id string) error
}
