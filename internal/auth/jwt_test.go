package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatamo_backend/internal/config"
	"hatamo_backend/internal/models"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit_test_secret_12345"
	cfg.JWT.TTLHours = 7 * 24
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken("user-1", "taro@example.com", models.UserTypeClient, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "taro@example.com", claims.Email)
	assert.Equal(t, models.UserTypeClient, claims.UserType)
	assert.True(t, claims.EmailVerified)
}

func TestParseToken_Malformed(t *testing.T) {
	setupJWTConfig(t)

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setupJWTConfig(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := other.SignedString([]byte("a_different_secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseToken_Expired(t *testing.T) {
	setupJWTConfig(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("unit_test_secret_12345"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
