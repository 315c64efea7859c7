package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	assert.True(t, CheckPasswordHash("senha123", hash))
	assert.False(t, CheckPasswordHash("outra", hash))
	assert.False(t, CheckPasswordHash("senha123", "not-a-hash"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("senha123")
	require.NoError(t, err)
	second, err := HashPassword("senha123")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so equal passwords hash differently.
	assert.NotEqual(t, first, second)
}
