package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to put a product into a cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartItemInput defines the data for changing a cart item's quantity.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartUsecase defines the interface for shopping-cart business operations.
// Every operation is scoped to the authenticated user; items belonging to
// another user's cart are never visible or mutable.
type CartUsecase interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem puts a product into the user's cart and computes the line subtotal.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*entity.CartItem, error)

	// UpdateItem changes the quantity of an item in the user's cart.
	UpdateItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, input *UpdateCartItemInput) (*entity.CartItem, error)

	// RemoveItem deletes an item from the user's cart.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) error
}
