package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductImageInput describes one image attached to a product at creation time.
type ProductImageInput struct {
	URL string `json:"url" validate:"required,url"`
	Alt string `json:"alt"`
}

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Slug        string              `json:"slug" validate:"required,max=255"`
	Name        string              `json:"name" validate:"required,max=255"`
	Description string              `json:"description"`
	Price       int64               `json:"price" validate:"required,gt=0"`
	Stock       int                 `json:"stock" validate:"gte=0"`
	Weight      int                 `json:"weight" validate:"gte=0"`
	Images      []ProductImageInput `json:"images" validate:"dive"`
}

// UpdateProductInput defines the data for a partial product update.
// Nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" validate:"omitempty,gt=0"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	Weight      *int    `json:"weight" validate:"omitempty,gte=0"`
}

// ProductUsecase defines the interface for catalog business operations.
type ProductUsecase interface {
	// ListProducts returns the whole catalog with images.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product by slug.
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies a partial update to the product identified by ID.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product and its images by slug.
	DeleteProduct(ctx context.Context, slug string) error
}
