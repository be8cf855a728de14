package domain

import "time"

// Role is the privilege level carried by every account.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the three recognised roles.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager || r == RoleAdmin
}

// AtLeastManager reports whether r carries manager-level privilege.
func (r Role) AtLeastManager() bool {
	return r == RoleManager || r == RoleAdmin
}

// Contact holds the free-form contact details of an account.
type Contact struct {
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
}

// Account models an employee record and the authenticated actor behind it.
// An account with RoleAdmin is always active; the lifecycle operations
// preserve that invariant.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	Position     string    `json:"position,omitempty"`
	Contact      Contact   `json:"contact"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
