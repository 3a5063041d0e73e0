package postgres

import (
	"context"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List retrieves all products with their images, newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Images").
		Order("created_at DESC").
		Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single product by its unique ID, preloading its images.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Images").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a single product by its slug, preloading its images.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Images").
		Where("slug = ?", slug).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product together with its images.
// GORM's Create with associations inserts into products and product_images together.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductSlugTaken.WrapMessage("product slug already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the product entity with the generated ID and timestamps
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, imageM := range productM.Images {
		if i < len(product.Images) {
			product.Images[i].ID = imageM.ID
			product.Images[i].ProductID = imageM.ProductID
		}
	}

	return nil
}

// Update modifies an existing product's scalar fields. Images are not touched.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"slug":        product.Slug,
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"weight":      product.Weight,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrProductSlugTaken.WrapMessage("product slug already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteBySlug removes a product and its images by slug.
func (repo *productRepository) DeleteBySlug(ctx context.Context, slug string) error {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product by slug")
	}

	// Images first so the FK constraint holds without cascade.
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productM.ID).
		Delete(&model.ProductImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product images")
	}

	if err := repo.db.WithContext(ctx).
		Delete(&productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]*entity.ProductImage, 0, len(data.Images))
	for _, imageM := range data.Images {
		images = append(images, &entity.ProductImage{
			ID:        imageM.ID,
			ProductID: imageM.ProductID,
			URL:       imageM.URL,
			Alt:       imageM.Alt,
		})
	}

	return &entity.Product{
		ID:          data.ID,
		Slug:        data.Slug,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Weight:      data.Weight,
		Images:      images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]*model.ProductImageModel, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, &model.ProductImageModel{
			ID:        image.ID,
			ProductID: image.ProductID,
			URL:       image.URL,
			Alt:       image.Alt,
		})
	}

	return &model.ProductModel{
		ID:          data.ID,
		Slug:        data.Slug,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Weight:      data.Weight,
		Images:      images,
	}
}
