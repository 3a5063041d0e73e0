package handler

import (
	"net/http"

	"freshmarket/internal/delivery/http/middleware"
	"freshmarket/internal/delivery/http/response"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping-cart handlers.
// Every route behind it runs after the authentication gate, so the user id is
// always present on the context.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get returns the current user's cart, creating it on first access.
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddItem puts a product into the current user's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	input := new(usecase.AddCartItemInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// UpdateItem changes the quantity of a cart item.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("itemID must be a valid UUID")
	}

	input := new(usecase.UpdateCartItemInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), userID, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Cart item updated")
}

// RemoveItem deletes a cart item.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("itemID must be a valid UUID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed")
}

// currentUserID reads the authenticated user's id set by the auth gate.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrMissingCredential.WrapMessage("no authenticated identity on context")
	}

	return userID, nil
}
