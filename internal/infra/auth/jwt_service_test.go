package auth

import (
	"testing"

	"descu/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndValidateToken(t *testing.T) {
	cfg := testConfig("test_session_secret_key_very_long_for_testing")

	// Create JWT service
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	// Test data
	viewerID := uuid.New().String()
	name := "Usuario 7"

	// Issue token
	token, err := jwtService.IssueToken(viewerID, name)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate token
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, viewerID, claims.ViewerID)
	assert.Equal(t, viewerID, claims.Subject)
	assert.Equal(t, name, claims.Name)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig("test_session_secret_key_very_long_for_testing")

	// Create JWT service
	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	validator, err := NewJWTService(testConfig("validator_secret_key_very_long_too"))
	assert.NoError(t, err)

	token, err := issuer.IssueToken(uuid.New().String(), "")
	assert.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	// Should fail to create service
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "session secret must be provided")
}
