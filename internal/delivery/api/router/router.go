// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler   *handler.ProductHandler
	TenantMiddleware *middleware.TenantMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler   *handler.ProductHandler
	tenantMiddleware *middleware.TenantMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:   params.ProductHandler,
		tenantMiddleware: params.TenantMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront API, no authentication
	public := e.Group("/api/v1/external/public")
	public.GET("/health", handler.APIHealthCheck)

	productGroup := public.Group("/product")
	productGroup.Use(r.tenantMiddleware.Handle) // Every catalog query is scoped to an account
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/filter-options", r.productHandler.GetFilterOptions)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/related", r.productHandler.GetRelatedProducts)
	}
}
