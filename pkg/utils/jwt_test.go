package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("test-secret-key", "a-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken("test-secret-key", token)
	require.NoError(t, err)
	assert.Equal(t, "a-1", claims.AccountID)
	assert.Equal(t, "postline", claims.Issuer)
}

func TestValidateToken_WrongKey(t *testing.T) {
	token, err := GenerateToken("test-secret-key", "a-1", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken("another-key", token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret-key", "a-1", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken("test-secret-key", token)
	assert.Error(t, err)
}
