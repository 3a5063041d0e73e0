package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential holds the stored, salted one-way hash of a user's password.
// The association to User is strictly one-to-one: UserID is the primary key,
// and the record is created in the same transaction as the User itself, so a
// registered account can never exist without exactly one credential.
type Credential struct {
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // The bcrypt hash of the password. Never read back as plaintext.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
