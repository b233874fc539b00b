package domain

import "time"

type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SocialPlatform is a social media network (Snapchat, Twitter, ...).
type SocialPlatform struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Bank holds influencer payment routing data. SWIFT codes are unique among
// live rows.
type Bank struct {
	ID        string
	Name      string
	Swift     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coupon is a discount code given to an influencer. Codes double as sales
// tracking identifiers and are generated server-side, never client-supplied.
type Coupon struct {
	ID         string
	Percentage int
	Code       string
	Start      *time.Time
	End        *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CategoryRepository interface {
	Create(category *Category) error
	Update(category *Category) error
	GetByID(id string) (*Category, error)
	List() ([]*Category, error)
	SoftDelete(id string) error
}

type SocialPlatformRepository interface {
	Create(platform *SocialPlatform) error
	Update(platform *SocialPlatform) error
	GetByID(id string) (*SocialPlatform, error)
	List() ([]*SocialPlatform, error)
	SoftDelete(id string) error
}

type BankRepository interface {
	Create(bank *Bank) error
	Update(bank *Bank) error
	GetByID(id string) (*Bank, error)
	List() ([]*Bank, error)
	// SwiftExists reports whether another live bank already uses the SWIFT
	// code. excludeID skips the row being updated.
	SwiftExists(swift, excludeID string) (bool, error)
	SoftDelete(id string) error
}

type CouponRepository interface {
	Create(coupon *Coupon) error
	Update(coupon *Coupon) error
	GetByID(id string) (*Coupon, error)
	List() ([]*Coupon, error)
	SoftDelete(id string) error
}
