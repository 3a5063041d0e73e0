package impl

import (
	"context"
	"log/slog"

	deliverycontext "freshmarket/internal/delivery/context"
	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the whole catalog with images.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single product by slug.
func (srv *productService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product not found")
		}

		srv.log(ctx).Error("Failed to get product", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("slug", input.Slug))

	images := make([]*entity.ProductImage, 0, len(input.Images))
	for _, image := range input.Images {
		images = append(images, &entity.ProductImage{
			URL: image.URL,
			Alt: image.Alt,
		})
	}

	product := &entity.Product{
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Weight:      input.Weight,
		Images:      images,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

// UpdateProduct applies a partial update to the product identified by ID.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", id))

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(findErr, "failed to load product for update")
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Weight != nil {
			product.Weight = *input.Weight
		}

		if updateErr := productRepo.Update(ctx, product); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteProduct removes a product and its images by slug.
func (srv *productService) DeleteProduct(ctx context.Context, slug string) error {
	srv.log(ctx).Info("Deleting product", slog.String("slug", slug))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if deleteErr := repoFactory.ProductRepo().DeleteBySlug(ctx, slug); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(deleteErr, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.String("slug", slug), slog.Any("error", err))

		return err
	}

	return nil
}
