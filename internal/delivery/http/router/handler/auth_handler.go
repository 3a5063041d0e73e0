package handler

import (
	"net/http"

	"freshmarket/internal/delivery/http/middleware"
	"freshmarket/internal/delivery/http/response"
	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"user":        output.User,
	}, "User registered successfully")
}

// Login handles the login request and returns a signed access token.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": output.AccessToken,
		"user":        output.User,
	}, "Login successful")
}

// Me returns the identity resolved by the authentication gate.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := c.Get(middleware.ContextKeyUser).(*entity.User)
	if !ok {
		return domainerrors.ErrMissingCredential.WrapMessage("no authenticated identity on context")
	}

	return response.Success(c, http.StatusOK, user, "Current user")
}
