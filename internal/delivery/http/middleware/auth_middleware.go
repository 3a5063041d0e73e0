// Package middleware contains the HTTP middlewares for the Echo server.
package middleware

import (
	"strings"

	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth gate for downstream handlers.
const (
	// ContextKeyUserID holds the authenticated user's uuid.UUID.
	ContextKeyUserID = "userID"
	// ContextKeyUser holds the authenticated *entity.User.
	ContextKeyUser = "user"
)

// AuthMiddleware is the authentication gate. It verifies the bearer token and
// resolves the identity it names before any protected handler runs.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token and loads the current user.
// Errors are returned as domain errors so the central error handler maps them
// to the unified envelope: missing or malformed credentials and bad tokens
// yield 401, a token whose subject no longer exists yields 404.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingCredential.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrMissingCredential.WrapMessage("authorization header is not a bearer token")
		}

		user, err := m.authUsecase.ResolveIdentity(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		// Expose the resolved identity to handlers.
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)

		return next(c)
	}
}
