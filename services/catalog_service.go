package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
)

// CatalogService owns the public content collections: categories, cakes and
// testimonials. Ids and creation timestamps are always server-generated.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ==================== Categories ====================

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(name, slug string) (*models.Category, error) {
	category := models.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) DeleteCategory(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Cakes ====================

// CakeFilter narrows ListCakes by equality. Nil fields are ignored.
type CakeFilter struct {
	CategoryID *string
	Featured   *bool
}

// CakeInput is the payload for creating a cake. Id and timestamp supplied by
// clients are ignored; the server assigns both.
type CakeInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CategoryID   string  `json:"category_id"`
	ImageURL     string  `json:"image_url"`
	InstagramURL *string `json:"instagram_url"`
	Featured     bool    `json:"featured"`
}

// CakeUpdate is a partial update: only non-nil fields are applied.
type CakeUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	CategoryID   *string  `json:"category_id"`
	ImageURL     *string  `json:"image_url"`
	InstagramURL *string  `json:"instagram_url"`
	Featured     *bool    `json:"featured"`
}

func (u CakeUpdate) changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Price != nil {
		changes["price"] = *u.Price
	}
	if u.CategoryID != nil {
		changes["category_id"] = *u.CategoryID
	}
	if u.ImageURL != nil {
		changes["image_url"] = *u.ImageURL
	}
	if u.InstagramURL != nil {
		changes["instagram_url"] = *u.InstagramURL
	}
	if u.Featured != nil {
		changes["featured"] = *u.Featured
	}
	return changes
}

func (s *CatalogService) ListCakes(filter CakeFilter) ([]models.Cake, error) {
	query := s.db.Model(&models.Cake{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var cakes []models.Cake
	if err := query.Find(&cakes).Error; err != nil {
		return nil, err
	}
	return cakes, nil
}

func (s *CatalogService) GetCake(id string) (*models.Cake, error) {
	var cake models.Cake
	if err := s.db.Where("id = ?", id).First(&cake).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cake, nil
}

func (s *CatalogService) CreateCake(input CakeInput) (*models.Cake, error) {
	cake := models.Cake{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		ImageURL:     input.ImageURL,
		InstagramURL: input.InstagramURL,
		Featured:     input.Featured,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&cake).Error; err != nil {
		return nil, err
	}
	return &cake, nil
}

// UpdateCake applies the non-nil fields of the partial payload. An entirely
// empty payload is rejected with ErrEmptyUpdate before touching the row.
// Concurrent updates to the same cake are last-write-wins.
func (s *CatalogService) UpdateCake(id string, update CakeUpdate) (*models.Cake, error) {
	changes := update.changes()
	if len(changes) == 0 {
		return nil, ErrEmptyUpdate
	}

	var cake models.Cake
	if err := s.db.Where("id = ?", id).First(&cake).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&cake).Updates(changes).Error; err != nil {
		return nil, err
	}

	if err := s.db.Where("id = ?", id).First(&cake).Error; err != nil {
		return nil, err
	}
	return &cake, nil
}

func (s *CatalogService) DeleteCake(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Cake{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Testimonials ====================

func (s *CatalogService) ListTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (s *CatalogService) CreateTestimonial(authorName, content string, rating int) (*models.Testimonial, error) {
	testimonial := models.Testimonial{
		ID:         uuid.NewString(),
		AuthorName: authorName,
		Content:    content,
		Rating:     rating,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.db.Create(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (s *CatalogService) DeleteTestimonial(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Testimonial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ==================== Stats ====================

type Stats struct {
	Cakes        int64 `json:"cakes"`
	Categories   int64 `json:"categories"`
	Testimonials int64 `json:"testimonials"`
}

func (s *CatalogService) Stats() (*Stats, error) {
	var stats Stats
	if err := s.db.Model(&models.Cake{}).Count(&stats.Cakes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Category{}).Count(&stats.Categories).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Testimonial{}).Count(&stats.Testimonials).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
