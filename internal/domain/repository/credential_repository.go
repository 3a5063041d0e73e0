package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when no stored credential exists for a user.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the standard operations for password-credential
// persistence. One credential per user; Create must run in the same
// transaction as the user's creation.
type CredentialRepository interface {
	// Create persists a new credential record.
	Create(ctx context.Context, credential *entity.Credential) error

	// FindByUserID retrieves the credential belonging to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}
