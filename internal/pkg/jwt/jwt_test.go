package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "owner@shop.in", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "owner@shop.in", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
	assert.NotContains(t, claims, "role")
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "owner@shop.in", user.RoleAdmin)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	expiresAt := time.Now().Add(24 * time.Hour).Unix()
	cookie := svc.RefreshTokenCookie("some-token", expiresAt)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
