package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	const plaintext = "Test1234!"

	h1, err := HashPassword(plaintext)
	require.NoError(t, err)
	h2, err := HashPassword(plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same plaintext must differ")
	assert.True(t, CheckPasswordHash(plaintext, h1))
	assert.True(t, CheckPasswordHash(plaintext, h2))
}

func TestCheckPasswordHash_WrongPassword(t *testing.T) {
	h, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.False(t, CheckPasswordHash("battery staple", h))
}
