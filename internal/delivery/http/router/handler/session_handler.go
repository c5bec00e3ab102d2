package handler

import (
	"log/slog"
	"net/http"

	"descu/internal/delivery/http/response"
	"descu/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler issues viewer session tokens. There is no account system;
// a session is an opaque viewer identity used for attribution and for
// filtering "my listings".
type SessionHandler struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(tokenSvc service.TokenService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type createSessionRequest struct {
	Name string `json:"name" validate:"max=80"`
}

type createSessionResponse struct {
	Token    string `json:"token"`
	ViewerID string `json:"viewerId"`
	Name     string `json:"name,omitempty"`
}

// Create mints a fresh viewer identity and its session token.
func (h *SessionHandler) Create(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	viewerID := uuid.New().String()
	token, err := h.tokenSvc.IssueToken(viewerID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, createSessionResponse{
		Token:    token,
		ViewerID: viewerID,
		Name:     req.Name,
	}, "Session created")
}
