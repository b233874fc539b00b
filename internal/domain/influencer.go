package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Influencer is the basic building block of the system. Influencers work on
// offers, drive sales and get paid for their work.
type Influencer struct {
	ID                string
	Name              string
	Gender            Gender
	CategoryID        string
	Phone             string
	Email             string
	BankID            string
	IBAN              string
	AccountHolderName string
	City              string
	Branch            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SocialAccount is an influencer's account on a social platform, with the
// cost the agency pays for a post on it.
type SocialAccount struct {
	ID           string
	Username     string
	PlatformID   string
	InfluencerID string
	Cost         float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type InfluencerRepository interface {
	Create(influencer *Influencer) error
	Update(influencer *Influencer) error
	GetByID(id string) (*Influencer, error)
	List() ([]*Influencer, error)
	// IBANExists reports whether another live influencer already uses the
	// IBAN. excludeID skips the row being updated.
	IBANExists(iban, excludeID string) (bool, error)
	SoftDelete(id string) error
}

type SocialAccountRepository interface {
	Create(account *SocialAccount) error
	Update(account *SocialAccount) error
	GetByID(id string) (*SocialAccount, error)
	List() ([]*SocialAccount, error)
	ListByInfluencerID(influencerID string) ([]*SocialAccount, error)
	SoftDelete(id string) error
}
