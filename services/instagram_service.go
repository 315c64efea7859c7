package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
)

const (
	instagramGraphBaseURL = "https://graph.instagram.com"
	instagramMediaFields  = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp"
	instagramPageSize     = 20

	// fallbackCategoryID receives imported cakes when no category exists yet.
	fallbackCategoryID = "cat-especial"

	importedNameMaxLen     = 50
	defaultImportedName    = "Criação Paula Veiga"
	defaultImportedCaption = "Mais uma delícia da Paula Veiga!"
)

// InstagramService pulls recent media from the Instagram Graph API into the
// cake catalog. One-shot: no progress persistence, no retries.
type InstagramService struct {
	db       *gorm.DB
	settings *SettingsService
	client   *resty.Client
}

func NewInstagramService(db *gorm.DB, settings *SettingsService) *InstagramService {
	client := resty.New().
		SetBaseURL(instagramGraphBaseURL).
		SetTimeout(10 * time.Second)
	return &InstagramService{db: db, settings: settings, client: client}
}

// SetBaseURL points the service at a different Graph API host.
func (s *InstagramService) SetBaseURL(url string) {
	s.client.SetBaseURL(url)
}

type instagramMedia struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Permalink    string `json:"permalink"`
	Timestamp    string `json:"timestamp"`
}

type instagramMediaResponse struct {
	Data []instagramMedia `json:"data"`
}

type instagramErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Sync fetches one page of media and inserts every static image or album not
// yet in the catalog, deduplicated by permalink. Inserts are committed one by
// one: if the loop fails midway, the cakes already created stay and the count
// so far is returned along with the error. Re-running is safe because of the
// dedup.
func (s *InstagramService) Sync(ctx context.Context) (int, error) {
	settings, err := s.settings.GetPrivileged()
	if err != nil {
		return 0, err
	}
	if settings.InstagramAccessToken == "" || settings.InstagramUserID == "" {
		return 0, ErrInstagramNotConfigured
	}

	var media instagramMediaResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       instagramMediaFields,
			"access_token": settings.InstagramAccessToken,
			"limit":        fmt.Sprintf("%d", instagramPageSize),
		}).
		SetResult(&media).
		Get(fmt.Sprintf("/%s/media", settings.InstagramUserID))
	if err != nil {
		return 0, fmt.Errorf("erro de conexão: %w", err)
	}
	if resp.IsError() {
		message := "Token inválido ou expirado"
		var apiErr instagramErrorResponse
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		return 0, &UpstreamError{Message: message}
	}

	categoryID := s.importCategoryID()

	imported := 0
	for _, item := range media.Data {
		if item.MediaType != "IMAGE" && item.MediaType != "CAROUSEL_ALBUM" {
			continue
		}

		var count int64
		if err := s.db.Model(&models.Cake{}).
			Where("instagram_url = ?", item.Permalink).
			Count(&count).Error; err != nil {
			return imported, err
		}
		if count > 0 {
			continue
		}

		imageURL := item.MediaURL
		if imageURL == "" {
			imageURL = item.ThumbnailURL
		}
		if imageURL == "" {
			continue
		}

		permalink := item.Permalink
		cake := models.Cake{
			ID:           uuid.NewString(),
			Name:         importedName(item.Caption),
			Description:  importedDescription(item.Caption),
			Price:        0,
			CategoryID:   categoryID,
			ImageURL:     imageURL,
			InstagramURL: &permalink,
			Featured:     false,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.db.Create(&cake).Error; err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

// importCategoryID picks the first existing category, falling back to a
// well-known id when the catalog has none yet.
func (s *InstagramService) importCategoryID() string {
	var category models.Category
	if err := s.db.First(&category).Error; err != nil {
		return fallbackCategoryID
	}
	return category.ID
}

func importedName(caption string) string {
	if caption == "" {
		return defaultImportedName
	}
	runes := []rune(caption)
	if len(runes) > importedNameMaxLen {
		runes = runes[:importedNameMaxLen]
	}
	return string(runes)
}

func importedDescription(caption string) string {
	if caption == "" {
		return defaultImportedCaption
	}
	return caption
}
