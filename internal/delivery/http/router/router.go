// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"descu/internal/delivery/http/middleware"
	"descu/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	ListingHandler *handler.ListingHandler
	SuggestHandler *handler.SuggestHandler
	SessionHandler *handler.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	listingHandler *handler.ListingHandler
	suggestHandler *handler.SuggestHandler
	sessionHandler *handler.SessionHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		listingHandler: params.ListingHandler,
		suggestHandler: params.SuggestHandler,
		sessionHandler: params.SessionHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session issuance; no account system behind it
	e.POST("/session", r.sessionHandler.Create)

	// Listing routes. Browsing is anonymous-friendly; submission and
	// boosting require a viewer identity.
	listingGroup := e.Group("/listings")
	{
		listingGroup.GET("", r.catalogHandler.Browse, r.authMiddleware.OptionalIdentity)
		listingGroup.POST("", r.listingHandler.Submit, r.authMiddleware.RequireIdentity)
		listingGroup.POST("/suggest", r.suggestHandler.Suggest, r.authMiddleware.OptionalIdentity)
		listingGroup.GET("/mine", r.listingHandler.Mine, r.authMiddleware.RequireIdentity)
		listingGroup.GET("/:id", r.listingHandler.Get)
		listingGroup.GET("/:id/qr", r.listingHandler.QR)
		listingGroup.POST("/:id/boost", r.listingHandler.Boost, r.authMiddleware.RequireIdentity)
	}

	// Catalog administration
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.POST("/reseed", r.catalogHandler.Reseed)
	}
}
