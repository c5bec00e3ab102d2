package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens. The subject is an
// opaque viewer identity string; the core never inspects it beyond
// attribution and "my listings" filtering.
type Claims struct {
	ViewerID string `json:"viewer_id"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session
// tokens. This abstracts the identity/session provider from the use cases.
type TokenService interface {
	// IssueToken creates a session token for a viewer identity.
	IssueToken(viewerID, name string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
