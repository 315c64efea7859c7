package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
	"github.com/SallesND3V/Doceiria-Mockup-Site/utils"
)

func newAuthService(t *testing.T) *AuthService {
	return NewAuthService(newTestDB(t), "test-secret", 24*time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	token, admin, err := svc.Register("a@x.com", "pw1", "Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, admin.ID)
	assert.Equal(t, "a@x.com", admin.Email)
	assert.NotEqual(t, "pw1", admin.PasswordHash)

	loginToken, loginAdmin, err := svc.Login("a@x.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, admin.ID, loginAdmin.ID)

	_, _, err = svc.Login("a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@x.com", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 24*time.Hour)

	_, first, err := svc.Register("a@x.com", "pw1", "Ana")
	require.NoError(t, err)

	_, _, err = svc.Register("a@x.com", "pw2", "Outra Ana")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Stored account must be untouched by the failed registration.
	var stored models.AdminUser
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&stored).Error)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, first.PasswordHash, stored.PasswordHash)
	assert.Equal(t, "Ana", stored.Name)
}

func TestVerifyToken(t *testing.T) {
	svc := newAuthService(t)

	token, admin, err := svc.Register("a@x.com", "pw1", "Ana")
	require.NoError(t, err)

	resolved, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resolved.ID)
	assert.Equal(t, admin.Email, resolved.Email)
}

func TestVerifyTokenTampered(t *testing.T) {
	svc := newAuthService(t)

	token, _, err := svc.Register("a@x.com", "pw1", "Ana")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token + "x")
	assert.Error(t, err)

	_, err = svc.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := newAuthService(t)

	_, admin, err := svc.Register("a@x.com", "pw1", "Ana")
	require.NoError(t, err)

	expired, err := utils.GenerateJWT([]byte("test-secret"), admin.ID, admin.Email, -time.Minute)
	require.NoError(t, err)

	_, err = svc.VerifyToken(expired)
	assert.Error(t, err)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	svc := newAuthService(t)

	_, admin, err := svc.Register("a@x.com", "pw1", "Ana")
	require.NoError(t, err)

	forged, err := utils.GenerateJWT([]byte("another-secret"), admin.ID, admin.Email, time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyToken(forged)
	assert.Error(t, err)
}

func TestVerifyTokenDeletedAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 24*time.Hour)

	token, admin, err := svc.Register("a@x.com", "pw1", "Ana")
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.AdminUser{}, "id = ?", admin.ID).Error)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret", 24*time.Hour)

	require.NoError(t, svc.EnsureDefaultAdmin("admin@paulaveiga.com", "senha123", "Paula Veiga"))

	var first models.AdminUser
	require.NoError(t, db.Where("email = ?", "admin@paulaveiga.com").First(&first).Error)

	// Second run is a no-op, the account keeps its original hash.
	require.NoError(t, svc.EnsureDefaultAdmin("admin@paulaveiga.com", "outra-senha", "Paula Veiga"))

	var count int64
	require.NoError(t, db.Model(&models.AdminUser{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var again models.AdminUser
	require.NoError(t, db.Where("email = ?", "admin@paulaveiga.com").First(&again).Error)
	assert.Equal(t, first.PasswordHash, again.PasswordHash)

	_, _, err := svc.Login("admin@paulaveiga.com", "senha123")
	assert.NoError(t, err)
}
