package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents one item in the catalog, addressed publicly by slug.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Slug        string          `json:"slug"` // URL-safe unique identifier, e.g. "fuji-apple".
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int64           `json:"price"` // Price in minor currency units.
	Stock       int             `json:"stock"`
	Weight      int             `json:"weight"` // Unit weight in grams.
	Images      []*ProductImage `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductImage is one display image attached to a product.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	URL       string    `json:"url"`
	Alt       string    `json:"alt"`
}
