package domain

import (
	"time"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	// RoleAdmin is the only role handed out by registration for now.
	// Staff/readonly roles can be added without touching the token format.
	RoleAdmin Role = "admin"
)

// User represents a staff account that can log into the admin dashboard.
// The password hash IS part of the persisted JSON image (the database file is
// the only place it lives); the API layer maps users to a response DTO that
// omits it, so the hash never crosses the HTTP boundary.
type User struct {
	ID           string    `json:"id"` // UUID v4
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique across all users
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
