package handler

import (
	"log/slog"
	"net/http"

	"descu/internal/delivery/http/middleware"
	"descu/internal/delivery/http/response"
	"descu/internal/domain/entity"
	"descu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for single-listing handlers.
type ListingHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitListingRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Price       int64    `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Delivery    string   `json:"delivery"`
	Image       string   `json:"image"`
	Locale      string   `json:"locale"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Submit handles a new listing submission from the authenticated viewer.
func (h *ListingHandler) Submit(c echo.Context) error {
	submitter, ok := middleware.SubmitterFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Viewer identity required")
	}

	var req submitListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing, err := h.uc.SubmitListing(c.Request().Context(), submitter, usecase.SubmitListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    entity.Category(req.Category),
		Delivery:    entity.DeliveryMode(req.Delivery),
		Image:       req.Image,
		Locale:      entity.Locale(req.Locale),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created")
}

// Boost promotes a listing owned by the authenticated viewer.
func (h *ListingHandler) Boost(c echo.Context) error {
	submitter, ok := middleware.SubmitterFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Viewer identity required")
	}

	listing, err := h.uc.BoostListing(c.Request().Context(), submitter, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing boosted")
}

// Mine lists the authenticated viewer's own listings, most recent first.
func (h *ListingHandler) Mine(c echo.Context) error {
	submitter, ok := middleware.SubmitterFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Viewer identity required")
	}

	listings, err := h.uc.MyListings(c.Request().Context(), submitter.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Get retrieves a single listing by identity.
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.uc.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// QR renders the share QR code for a listing as a PNG image.
func (h *ListingHandler) QR(c echo.Context) error {
	qrBytes, err := h.uc.ListingQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", qrBytes)
}
