package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the standard operations for shopping-cart persistence.
type CartRepository interface {
	// FindByUserID retrieves a user's cart with its items and products preloaded.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new, empty cart for a user.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindItemByID retrieves a single cart item with its product preloaded.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// CreateItem persists a new cart item.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItem modifies an existing cart item's quantity and subtotal.
	UpdateItem(ctx context.Context, item *entity.CartItem) error

	// DeleteItem removes a cart item by its ID.
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
