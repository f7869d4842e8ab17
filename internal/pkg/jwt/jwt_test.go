package jwt

import (
	"context"
	"testing"

	"github.com/bizpulse/bizpulse-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessTokenClaims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")
	businessID := "b1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("u1", "owner@example.com", &businessID, user.RoleOwner)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "owner@example.com", claims["email"])
	assert.Equal(t, "b1", claims["business_id"])
	assert.Equal(t, "owner", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenWithoutBusiness(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, _, err := svc.GenerateAccessToken("u1", "new@example.com", nil, "")
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Nil(t, claims["business_id"])
	assert.Equal(t, "", claims["role"])
}

func TestGenerateRefreshTokenType(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "u1", claims["user_id"])
}

func TestInvalidExpirationDuration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "168h")

	_, _, err := svc.GenerateAccessToken("u1", "x@example.com", nil, user.RoleEmployee)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewJWTService(testSecret, "1h", "168h")
	verifier := NewJWTService("a-different-secret", "1h", "168h")

	tokenString, _, err := issuer.GenerateRefreshToken("u1")
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), tokenString)
	assert.Error(t, err)
}
