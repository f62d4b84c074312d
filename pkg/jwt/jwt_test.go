package jwt

import (
	"testing"
	"time"

	"hospital-dashboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s3cret", AccessExpiry: time.Hour})

	token, err := svc.GenerateSessionToken("42", "drSmith", "dr@example.com", "doctor")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "drSmith", claims.Username)
	assert.Equal(t, "doctor", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
}

func TestJWTService_WrongSecret(t *testing.T) {
	a := NewJWTService(config.JWTConfig{Secret: "a"})
	b := NewJWTService(config.JWTConfig{Secret: "b"})

	token, err := a.GenerateSessionToken("1", "admin", "", "admin")
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute})
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateSessionToken("1", "admin", "", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
