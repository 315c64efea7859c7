package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
)

// SettingsService manages the singleton site settings row.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) load() (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.Where("id = ?", models.SiteSettingsID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSiteSettings(), nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// Get returns the public view. The access token field is absent from it
// entirely, never just blanked.
func (s *SettingsService) Get() (models.PublicSiteSettings, error) {
	settings, err := s.load()
	if err != nil {
		return models.PublicSiteSettings{}, err
	}
	return settings.Public(), nil
}

// GetPrivileged returns the full settings row, secret included. Callers must
// be authenticated.
func (s *SettingsService) GetPrivileged() (models.SiteSettings, error) {
	return s.load()
}

// SettingsUpdate is a partial update of the singleton; nil fields are left
// untouched.
type SettingsUpdate struct {
	HeroImageURL         *string `json:"hero_image_url"`
	LogoURL              *string `json:"logo_url"`
	InstagramAccessToken *string `json:"instagram_access_token"`
	InstagramUserID      *string `json:"instagram_user_id"`
}

// Update upserts the singleton row, merging only the non-nil fields and
// always refreshing updated_at.
func (s *SettingsService) Update(update SettingsUpdate) (models.SiteSettings, error) {
	settings, err := s.load()
	if err != nil {
		return models.SiteSettings{}, err
	}

	if update.HeroImageURL != nil {
		settings.HeroImageURL = *update.HeroImageURL
	}
	if update.LogoURL != nil {
		settings.LogoURL = *update.LogoURL
	}
	if update.InstagramAccessToken != nil {
		settings.InstagramAccessToken = *update.InstagramAccessToken
	}
	if update.InstagramUserID != nil {
		settings.InstagramUserID = *update.InstagramUserID
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.db.Save(&settings).Error; err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}
