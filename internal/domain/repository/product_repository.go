package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductSlugTaken is returned when a product slug is already in use.
	ErrProductSlugTaken = errors.New("product slug already taken")
)

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// List retrieves all products with their images.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single product by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// Create persists a new product together with its images.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product's scalar fields.
	Update(ctx context.Context, product *entity.Product) error

	// DeleteBySlug removes a product and its images by slug.
	DeleteBySlug(ctx context.Context, slug string) error
}
