// Package domain contains the core business entities and domain logic for the
// fishing log service. This package defines the fundamental types and business
// rules that are independent of external frameworks and infrastructure concerns.
package domain

// Role classifies a user's authorization level.
type Role string

const (
	// RoleUser is the default role assigned on registration
	RoleUser Role = "USER"

	// RoleAdmin marks administrative accounts
	RoleAdmin Role = "ADMIN"
)

// User represents a registered account that owns trips and their catches.
type User struct {
	// ID uniquely identifies the user (database-generated)
	ID int64

	// Username is the unique login name, alphanumeric, at most 50 characters
	Username string

	// PasswordHash is the bcrypt hash of the password; never serialized
	PasswordHash string

	// Email is the contact address, at most 100 characters
	Email string

	// Role is the authorization level (USER or ADMIN)
	Role Role
}

// UserUpdate carries the mutable user fields for a partial update.
// Nil fields are left untouched. Password is the plain text replacement
// and gets hashed before storage.
type UserUpdate struct {
	Username *string
	Password *string
	Email    *string
}
