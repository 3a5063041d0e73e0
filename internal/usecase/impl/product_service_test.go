package impl

import (
	"context"
	"testing"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	productRepo := new(MockProductRepository)
	txManager := &stubTxManager{factory: &stubRepoFactory{productRepo: productRepo}}

	svc := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{service: svc, productRepo: productRepo}
}

func TestProductService_ListProducts(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	expected := []*entity.Product{
		{ID: uuid.New(), Slug: "gala-apples", Name: "Gala Apples", Price: 350},
		{ID: uuid.New(), Slug: "whole-milk", Name: "Whole Milk", Price: 299},
	}
	fixtures.productRepo.On("List", ctx).Return(expected, nil)

	products, err := fixtures.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.productRepo.On("FindBySlug", ctx, "missing").
		Return(nil, repository.ErrProductNotFound)

	product, err := fixtures.service.GetProduct(ctx, "missing")

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_CreateProduct(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		Slug:        "gala-apples",
		Name:        "Gala Apples",
		Description: "Crisp and sweet, sold per kilogram.",
		Price:       350,
		Stock:       120,
		Weight:      1000,
		Images: []usecase.ProductImageInput{
			{URL: "https://cdn.example.com/gala-apples.jpg", Alt: "Gala apples"},
		},
	}

	productID := uuid.New()
	fixtures.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			assert.Equal(t, input.Slug, product.Slug)
			assert.Equal(t, input.Price, product.Price)
			require.Len(t, product.Images, 1)
			assert.Equal(t, input.Images[0].URL, product.Images[0].URL)

			product.ID = productID
		}).
		Return(nil)

	product, err := fixtures.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
	assert.Equal(t, "Gala Apples", product.Name)
}

func TestProductService_CreateProduct_SlugTaken(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Return(domainerrors.ErrProductSlugTaken.WrapMessage("product slug already in use"))

	product, err := fixtures.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Slug: "gala-apples", Name: "Gala Apples", Price: 350,
	})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductSlugTaken))
}

func TestProductService_UpdateProduct_Partial(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	existing := &entity.Product{
		ID:          uuid.New(),
		Slug:        "gala-apples",
		Name:        "Gala Apples",
		Description: "Crisp and sweet.",
		Price:       350,
		Stock:       120,
		Weight:      1000,
	}

	newName := "Royal Gala Apples"
	newPrice := int64(395)

	fixtures.productRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	fixtures.productRepo.On("Update", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			assert.Equal(t, newName, product.Name)
			assert.Equal(t, newPrice, product.Price)
			// Untouched fields keep their stored values.
			assert.Equal(t, 120, product.Stock)
			assert.Equal(t, "Crisp and sweet.", product.Description)
		}).
		Return(nil)

	product, err := fixtures.service.UpdateProduct(ctx, existing.ID, &usecase.UpdateProductInput{
		Name:  &newName,
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, product.Name)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	missingID := uuid.New()
	fixtures.productRepo.On("FindByID", ctx, missingID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fixtures.service.UpdateProduct(ctx, missingID, &usecase.UpdateProductInput{})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_DeleteProduct(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.productRepo.On("DeleteBySlug", ctx, "gala-apples").Return(nil)

	err := fixtures.service.DeleteProduct(ctx, "gala-apples")

	require.NoError(t, err)
	fixtures.productRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fixtures := createTestProductService(t)
	ctx := context.Background()

	fixtures.productRepo.On("DeleteBySlug", ctx, "missing").
		Return(repository.ErrProductNotFound)

	err := fixtures.service.DeleteProduct(ctx, "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
