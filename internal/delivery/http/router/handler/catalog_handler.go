// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"descu/internal/delivery/http/response"
	"descu/internal/domain/entity"
	"descu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// listingView is the wire shape of a listing, optionally annotated with
// the viewer-relative distance. Distance is rounded to one decimal for
// presentation only; ranking happens on unrounded values upstream.
type listingView struct {
	entity.Listing
	Distance *float64 `json:"distance,omitempty"`
}

// CatalogHandler holds dependencies for catalog-wide handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Browse handles the catalog discovery request.
// Query parameters: q (free text), category (key or "all"), locale.
func (h *CatalogHandler) Browse(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		category = entity.CategoryAll
	}

	result, err := h.uc.Browse(c.Request().Context(), usecase.BrowseQuery{
		Query:    c.QueryParam("q"),
		Category: category,
		Locale:   entity.Locale(c.QueryParam("locale")),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]listingView, 0, len(result.Listings))
	for _, ranked := range result.Listings {
		view := listingView{Listing: ranked.Listing}
		if ranked.Distance >= 0 {
			distance := ranked.DisplayDistance()
			view.Distance = &distance
		}
		views = append(views, view)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"listings":         views,
		"viewer":           result.Viewer,
		"locationResolved": result.LocationResolved,
	}, "")
}

type reseedRequest struct {
	Locale string `json:"locale"`
}

// Reseed regenerates the synthetic catalog, e.g. after a locale change.
// User-submitted listings survive the regeneration.
func (h *CatalogHandler) Reseed(c echo.Context) error {
	var req reseedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reseed input")
	}

	count, err := h.uc.Reseed(c.Request().Context(), entity.Locale(req.Locale))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"seeded": count,
	}, "Catalog reseeded")
}
