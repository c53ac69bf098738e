// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role classifies what a user is allowed to do on the site.
type Role string

const (
	// RoleAdmin is granted to the first registered user and allows
	// privileged actions such as deleting cafés.
	RoleAdmin Role = "admin"

	// RoleMember is the default role for every other registered user.
	RoleMember Role = "member"
)

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name given at sign-up.
	Name string `gorm:"size:100;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Role decides whether the user may perform privileged actions.
	Role Role `gorm:"size:20;not null;default:member"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
