package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := CreateToken(42, "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWTRejectsBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	_, err := ValidateJWT("")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := CreateToken(7, "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestGenerateRefreshTokenHashesValue(t *testing.T) {
	token, hashed, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)  // 32 random bytes, hex
	assert.Len(t, hashed, 64) // sha256, hex
	assert.NotEqual(t, token, hashed)
}
