package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"freshmarket/internal/delivery/http/response"
	domainerrors "freshmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Application errors carry their own status and business code; everything else
// becomes a generic 500 so internal details never reach the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if writeErr := response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		if writeErr := response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	// Unknown errors are logged with their full chain but returned opaque.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if writeErr := response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", ""); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
