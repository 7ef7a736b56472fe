package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("64a000000000000000000001", "user@example.com", "corps_member")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64a000000000000000000001", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "corps_member", claims.Role)
	assert.Equal(t, "64a000000000000000000001", claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token")
	assert.Error(t, err)

	_, err = ParseJWT("")
	assert.Error(t, err)
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(32)
	assert.Len(t, s, 32)
	assert.NotEqual(t, s, GenerateRandomString(32))
}
