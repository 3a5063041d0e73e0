package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a user's single active shopping cart. It is created lazily the
// first time the user touches any cart endpoint.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Items     []*CartItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CartItem is one product line inside a cart. Subtotal is denormalized as
// quantity times the product's price at the time of the last mutation.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Subtotal  int64     `json:"subtotal"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
