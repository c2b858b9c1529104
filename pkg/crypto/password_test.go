package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("whatever", "not-a-bcrypt-hash"))
}

func TestGenerateRandomToken(t *testing.T) {
	tok, err := GenerateRandomToken(16)
	require.NoError(t, err)
	assert.Len(t, tok, 32) // 16 bytes hex encoded

	other, err := GenerateRandomToken(16)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
