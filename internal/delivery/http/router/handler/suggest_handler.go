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

// SuggestHandler exposes the image-analysis suggestion boundary.
type SuggestHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewSuggestHandler is the constructor for SuggestHandler, injected by Fx.
func NewSuggestHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *SuggestHandler {
	return &SuggestHandler{
		uc:     uc,
		logger: logger,
	}
}

type suggestRequest struct {
	Image  string `json:"image" validate:"required"`
	Locale string `json:"locale"`
}

// Suggest analyzes a base64-encoded listing photo and proposes submission
// metadata. Failure here is non-fatal for the client: the submission form
// simply proceeds with user-entered values.
func (h *SuggestHandler) Suggest(c echo.Context) error {
	var req suggestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	suggestion, err := h.uc.Suggest(c.Request().Context(), req.Image, entity.Locale(req.Locale))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestion, "")
}
