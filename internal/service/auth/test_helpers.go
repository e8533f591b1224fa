package auth

import (
	"context"
	"testing"

	"github.com/mdhasanali39/taskQuest-server/internal/config"
	"github.com/stretchr/testify/require"
)

// DefaultJWTConfig returns a standard configuration for JWT authentication suitable for testing.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	}
}

// RequireTestJWTService creates a JWT service with DefaultJWTConfig and fails the test on error.
func RequireTestJWTService(t *testing.T) JWTService {
	t.Helper()
	service, err := NewJWTService(DefaultJWTConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return service
}

// RequireTestToken issues a token for email from svc and fails the test on error.
func RequireTestToken(t *testing.T, svc JWTService, email string) string {
	t.Helper()
	token, err := svc.GenerateToken(context.Background(), email)
	require.NoError(t, err, "Failed to generate test token")
	return token
}
