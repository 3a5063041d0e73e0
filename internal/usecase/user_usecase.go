package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"
)

// UserUsecase defines the interface for user directory operations.
type UserUsecase interface {
	// ListUsers returns all registered users, oldest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
