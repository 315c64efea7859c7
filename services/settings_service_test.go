package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
)

func strPtr(s string) *string { return &s }

func TestSettingsDefaults(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	public, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, models.SiteSettingsID, public.ID)
	assert.Empty(t, public.HeroImageURL)

	privileged, err := svc.GetPrivileged()
	require.NoError(t, err)
	assert.Equal(t, models.SiteSettingsID, privileged.ID)
	assert.Empty(t, privileged.InstagramAccessToken)
}

func TestSettingsUpsertMergesPartial(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	first, err := svc.Update(SettingsUpdate{
		HeroImageURL:         strPtr("https://cdn.example.com/hero.jpg"),
		InstagramAccessToken: strPtr("segredo"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", first.HeroImageURL)
	assert.Equal(t, "segredo", first.InstagramAccessToken)

	// Second update touches only the logo; everything else is kept.
	second, err := svc.Update(SettingsUpdate{LogoURL: strPtr("https://cdn.example.com/logo.png")})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/logo.png", second.LogoURL)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", second.HeroImageURL)
	assert.Equal(t, "segredo", second.InstagramAccessToken)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestSettingsSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	_, err := svc.Update(SettingsUpdate{HeroImageURL: strPtr("a")})
	require.NoError(t, err)
	_, err = svc.Update(SettingsUpdate{HeroImageURL: strPtr("b")})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPublicSettingsNeverExposeToken(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Update(SettingsUpdate{InstagramAccessToken: strPtr("muito-secreto")})
	require.NoError(t, err)

	public, err := svc.Get()
	require.NoError(t, err)

	// The public view has no token field at all, not even an empty one.
	body, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "instagram_access_token")
	assert.NotContains(t, string(body), "muito-secreto")

	privileged, err := svc.GetPrivileged()
	require.NoError(t, err)
	assert.Equal(t, "muito-secreto", privileged.InstagramAccessToken)
}
