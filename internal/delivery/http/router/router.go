// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freshmarket/internal/delivery/http/middleware"
	"freshmarket/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RootHandler    *handler.RootHandler
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	rootHandler    *handler.RootHandler
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		rootHandler:    params.RootHandler,
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Public utility endpoints
	e.GET("/", r.rootHandler.Root)
	e.GET("/hello", r.rootHandler.Hello)
	e.GET("/health", r.rootHandler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// User directory
	e.GET("/users", r.userHandler.List)

	// Catalog: reads are public, mutations require authentication
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:slug", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:slug", r.productHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Cart: everything is scoped to the authenticated user
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:itemID", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:itemID", r.cartHandler.RemoveItem)
	}
}
