// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"freshmarket/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// RootHandler serves the unauthenticated utility endpoints.
type RootHandler struct{}

// NewRootHandler is the constructor for RootHandler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Root greets API consumers at the root path with a short service banner
// and an index of the public endpoints.
func (h *RootHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service":     "freshmarket",
		"description": "FreshMarket products.",
		"endpoints": []string{
			"/",
			"/hello",
			"/health",
			"/auth/register",
			"/auth/login",
			"/auth/me",
			"/users",
			"/products",
			"/cart",
		},
	}, "Welcome to the FreshMarket API")
}

// Hello greets by the optional name query parameter.
func (h *RootHandler) Hello(c echo.Context) error {
	message := "Hello!"
	if name := c.QueryParam("name"); name != "" {
		message = "Hello, " + name + "!"
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": message,
	}, "Hello")
}

// HealthCheck reports service health for load balancers and orchestrators.
func (h *RootHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
	}, "Service is healthy")
}
