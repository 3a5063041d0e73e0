package handler

import (
	"net/http"

	"freshmarket/internal/delivery/http/response"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List returns the whole catalog.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Get returns a single product by slug.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	input := new(usecase.CreateProductInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update applies a partial update to the product identified by ID.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	input := new(usecase.UpdateProductInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a product by slug.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("slug")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
