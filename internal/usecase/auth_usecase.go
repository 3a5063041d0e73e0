// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with a signed access
// token, so clients are logged in right after registration.
type RegisterOutput struct {
	AccessToken string
	User        *entity.User
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a user together with their password credential.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies a password against the stored credential and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveIdentity verifies a bearer token and loads the user it identifies.
	ResolveIdentity(ctx context.Context, tokenString string) (*entity.User, error)
}
