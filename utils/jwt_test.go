package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, "admin-1", "a@x.com", time.Hour)
	require.NoError(t, err)

	adminID, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", adminID)
}

func TestJWTRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(secret, "admin-1", "a@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(secret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT([]byte("secret-a"), "admin-1", "a@x.com", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT([]byte("secret-b"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT([]byte("secret"), "nem.um.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
