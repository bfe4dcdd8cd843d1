// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"travelhub/internal/delivery/api/middleware"
	"travelhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	CatalogHandler  *handler.CatalogHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	catalogHandler  *handler.CatalogHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		catalogHandler:  params.CatalogHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public customer directory
	usersGroup := e.Group("/api/users")
	{
		usersGroup.POST("/register", r.customerHandler.Register)
		usersGroup.POST("/authenticate", r.customerHandler.Authenticate)
	}

	// Catalog and booking require a customer token
	authenticated := e.Group("", r.authMiddleware.Authenticate)
	{
		authenticated.GET("/packages", r.catalogHandler.ListPackages)
		authenticated.GET("/packages/:id", r.catalogHandler.GetPackage)
		authenticated.GET("/customers/:customerId/packages", r.catalogHandler.ListCustomerPackages)
		authenticated.GET("/hotels", r.catalogHandler.ListHotels)
		authenticated.POST("/book", r.catalogHandler.BookPackage)
	}
}
