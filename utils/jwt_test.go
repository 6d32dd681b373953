package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestParseToken_WrongKey(t *testing.T) {
	InitJWT("test-secret")
	token, err := GenerateToken("user-123")
	require.NoError(t, err)

	InitJWT("another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	InitJWT("test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
