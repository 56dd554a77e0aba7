package service

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_GenerateToken(t *testing.T) {
	// Given: an auth service with a known secret
	auth := NewAuthService("test-secret")

	// When: generating a token for an email
	tokenString, err := auth.GenerateToken("player@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	// Then: the token verifies with the same secret and carries the email
	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "player@example.com", claims["email"])
	assert.NotNil(t, claims["exp"])
}
