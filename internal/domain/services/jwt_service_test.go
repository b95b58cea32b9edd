package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk-http-service/internal/infrastructure/config"
)

func newTestJWTService(secret string) InterfaceJWTService {
	return NewJWTService(&config.Config{JWTSecretKey: secret})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService("test-secret")

	tokenString, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestExtractClaims(t *testing.T) {
	svc := newTestJWTService("test-secret")

	tokenString, err := svc.GenerateToken(42, "staff")
	require.NoError(t, err)

	claims, err := svc.ExtractClaims(tokenString)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "shopdesk-http-service", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	tokenString, err := newTestJWTService("secret-a").GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = newTestJWTService("secret-b").ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestJWTService("test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
