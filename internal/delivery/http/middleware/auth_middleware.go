package middleware

import (
	"net/http"
	"strings"

	"descu/internal/domain/service"
	"descu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys for the authenticated viewer identity.
const (
	ContextKeyViewerID   = "viewerID"
	ContextKeyViewerName = "viewerName"
)

// AuthMiddleware provides middleware for session token authentication.
// Identity is optional on browse endpoints and required on endpoints that
// mutate the catalog on behalf of a viewer.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// RequireIdentity validates the bearer session token and stores the viewer
// identity on the request context. Requests without a valid token are rejected.
func (m *AuthMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		c.Set(ContextKeyViewerID, claims.ViewerID)
		c.Set(ContextKeyViewerName, claims.Name)

		return next(c)
	}
}

// OptionalIdentity stores the viewer identity when a valid bearer token is
// present and lets the request through anonymously otherwise.
func (m *AuthMiddleware) OptionalIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := m.claimsFromRequest(c); err == nil {
			c.Set(ContextKeyViewerID, claims.ViewerID)
			c.Set(ContextKeyViewerName, claims.Name)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errors.New("Invalid token format, must be Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, errors.New("Invalid or expired token")
	}

	return claims, nil
}

// SubmitterFromContext extracts the authenticated viewer identity set by
// RequireIdentity or OptionalIdentity. The bool reports presence.
func SubmitterFromContext(c echo.Context) (usecase.Submitter, bool) {
	viewerID, ok := c.Get(ContextKeyViewerID).(string)
	if !ok || viewerID == "" {
		return usecase.Submitter{}, false
	}

	name, _ := c.Get(ContextKeyViewerName).(string)

	return usecase.Submitter{ID: viewerID, Name: name}, true
}
