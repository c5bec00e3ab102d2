// Package auth provides concrete implementations for session-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"descu/config"
	"descu/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret string        // Secret key for signing session tokens.
	sessionTTL    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}
	return &jwtService{
		sessionSecret: cfg.SecretKey.Session,
		sessionTTL:    time.Hour * 24 * 30, // e.g., 30 days
	}, nil
}

// IssueToken creates a session token for a viewer identity.
func (s *jwtService) IssueToken(viewerID, name string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		ViewerID: viewerID,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   viewerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
