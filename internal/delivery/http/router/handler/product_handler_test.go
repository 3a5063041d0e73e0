package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductUsecase is a testify mock for usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

func (m *MockProductUsecase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductUsecase) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductUsecase) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductUsecase) DeleteProduct(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)

	return args.Error(0)
}

func TestProductHandler_List(t *testing.T) {
	productUsecase := new(MockProductUsecase)
	e := newHandlerTestServer()
	e.GET("/products", NewProductHandler(productUsecase).List)

	products := []*entity.Product{
		{ID: uuid.New(), Slug: "gala-apples", Name: "Gala Apples", Price: 350},
	}
	productUsecase.On("ListProducts", mock.Anything).Return(products, nil)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gala-apples")
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	productUsecase := new(MockProductUsecase)
	e := newHandlerTestServer()
	e.GET("/products/:slug", NewProductHandler(productUsecase).Get)

	productUsecase.On("GetProduct", mock.Anything, "missing").
		Return(nil, domainerrors.ErrProductNotFound.WrapMessage("product not found"))

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error.Code)
}

func TestProductHandler_Create_ValidationFailed(t *testing.T) {
	productUsecase := new(MockProductUsecase)
	e := newHandlerTestServer()
	e.POST("/products", NewProductHandler(productUsecase).Create)

	// Price must be positive.
	req := httptest.NewRequest(http.MethodPost, "/products",
		strings.NewReader(`{"slug":"gala-apples","name":"Gala Apples","price":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	productUsecase.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestProductHandler_Create_Success(t *testing.T) {
	productUsecase := new(MockProductUsecase)
	e := newHandlerTestServer()
	e.POST("/products", NewProductHandler(productUsecase).Create)

	created := &entity.Product{ID: uuid.New(), Slug: "gala-apples", Name: "Gala Apples", Price: 350}
	productUsecase.On("CreateProduct", mock.Anything, mock.AnythingOfType("*usecase.CreateProductInput")).
		Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/products",
		strings.NewReader(`{"slug":"gala-apples","name":"Gala Apples","price":350,"stock":120,"weight":1000}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
}
