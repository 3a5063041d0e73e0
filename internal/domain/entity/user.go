// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing one registered account.
// It is created at registration and never mutated by the auth core afterwards.
type User struct {
	ID        uuid.UUID `json:"id"`         // The unique, server-generated identifier for the user.
	Email     string    `json:"email"`      // The user's email address, used as the login identifier. Unique.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this account was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification to this account.
}
