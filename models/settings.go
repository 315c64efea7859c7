package models

import "time"

// SiteSettingsID is the fixed primary key of the singleton settings row.
const SiteSettingsID = "site_settings"

// SiteSettings is a singleton: exactly one row, addressed by SiteSettingsID.
// The Instagram access token is a secret and is only serialized through the
// privileged admin view.
type SiteSettings struct {
	ID                   string    `gorm:"primaryKey" json:"id"`
	HeroImageURL         string    `json:"hero_image_url"`
	LogoURL              string    `json:"logo_url"`
	InstagramAccessToken string    `json:"instagram_access_token"`
	InstagramUserID      string    `json:"instagram_user_id"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PublicSiteSettings is the settings view exposed without authentication.
// It deliberately has no access-token field.
type PublicSiteSettings struct {
	ID              string    `json:"id"`
	HeroImageURL    string    `json:"hero_image_url"`
	LogoURL         string    `json:"logo_url"`
	InstagramUserID string    `json:"instagram_user_id"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Public strips the secret fields for the unauthenticated settings view.
func (s SiteSettings) Public() PublicSiteSettings {
	return PublicSiteSettings{
		ID:              s.ID,
		HeroImageURL:    s.HeroImageURL,
		LogoURL:         s.LogoURL,
		InstagramUserID: s.InstagramUserID,
		UpdatedAt:       s.UpdatedAt,
	}
}

// DefaultSiteSettings is what both settings views return before the first
// update ever happens.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{ID: SiteSettingsID}
}
