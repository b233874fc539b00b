package domain

import "time"

// PermViewInfluencerPayment marks users that finance digests are sent to.
const PermViewInfluencerPayment = "view_influencerpayment"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsStaff      bool
	IsActive     bool
	DateJoined   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Group struct {
	ID   string
	Name string
}

// Permission is a named capability. A user's effective permission set is the
// union of direct grants and grants inherited from group membership.
type Permission struct {
	ID   string
	Code string
	Name string
}

type UserRepository interface {
	Create(user *User) error
	Update(user *User) error
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	List() ([]*User, error)
	// EmailExists reports whether another live user already uses the email.
	EmailExists(email, excludeID string) (bool, error)
	// HasPermission checks the union of direct and group-inherited grants.
	HasPermission(userID, permissionCode string) (bool, error)
	// EmailsWithPermission resolves the deduplicated email addresses of
	// users holding the permission directly or via group membership. An
	// unknown permission code yields an empty slice, not an error.
	EmailsWithPermission(permissionCode string) ([]string, error)
	ListPermissions() ([]*Permission, error)
	SoftDelete(id string) error
}
