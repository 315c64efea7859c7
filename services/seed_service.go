package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
)

// SeedService bootstraps the demo catalog. It refuses to run twice: if any
// category, cake or testimonial already exists the call is a no-op.
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// Seed returns true when data was created, false when the catalog already
// had content.
func (s *SeedService) Seed() (bool, error) {
	var categories, cakes, testimonials int64
	if err := s.db.Model(&models.Category{}).Count(&categories).Error; err != nil {
		return false, err
	}
	if err := s.db.Model(&models.Cake{}).Count(&cakes).Error; err != nil {
		return false, err
	}
	if err := s.db.Model(&models.Testimonial{}).Count(&testimonials).Error; err != nil {
		return false, err
	}
	if categories > 0 || cakes > 0 || testimonials > 0 {
		return false, nil
	}

	now := time.Now().UTC()

	seedCategories := []models.Category{
		{ID: "cat-aniversario", Name: "Aniversário", Slug: "aniversario", CreatedAt: now},
		{ID: "cat-casamento", Name: "Casamento", Slug: "casamento", CreatedAt: now},
		{ID: "cat-especial", Name: "Ocasiões Especiais", Slug: "especial", CreatedAt: now},
	}
	if err := s.db.Create(&seedCategories).Error; err != nil {
		return false, err
	}

	seedCakes := []models.Cake{
		{
			ID:          uuid.NewString(),
			Name:        "Bolo Red Velvet",
			Description: "Delicioso bolo red velvet com cobertura de cream cheese",
			Price:       180.00,
			CategoryID:  "cat-aniversario",
			ImageURL:    "https://images.unsplash.com/photo-1586788680434-30d324b2d46f?w=600",
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Bolo de Chocolate Belga",
			Description: "Bolo de chocolate belga com ganache e morangos",
			Price:       220.00,
			CategoryID:  "cat-aniversario",
			ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=600",
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Bolo Clássico de Casamento",
			Description: "Elegante bolo de 3 andares com decoração em flores",
			Price:       650.00,
			CategoryID:  "cat-casamento",
			ImageURL:    "https://images.unsplash.com/photo-1535254973040-607b474cb50d?w=600",
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Bolo Naked Cake",
			Description: "Bolo rústico com frutas frescas e flores comestíveis",
			Price:       280.00,
			CategoryID:  "cat-casamento",
			ImageURL:    "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=600",
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Bolo de Morango",
			Description: "Bolo leve com chantilly e morangos frescos",
			Price:       150.00,
			CategoryID:  "cat-especial",
			ImageURL:    "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=600",
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Bolo Confeitado Personalizado",
			Description: "Bolo decorado com tema à escolha do cliente",
			Price:       350.00,
			CategoryID:  "cat-especial",
			ImageURL:    "https://images.unsplash.com/photo-1558301211-0d8c8ddee6ec?w=600",
			Featured:    true,
			CreatedAt:   now,
		},
	}
	if err := s.db.Create(&seedCakes).Error; err != nil {
		return false, err
	}

	seedTestimonials := []models.Testimonial{
		{
			ID:         uuid.NewString(),
			AuthorName: "Maria Silva",
			Content:    "O bolo do casamento da minha filha ficou simplesmente perfeito! Todos os convidados elogiaram muito. Obrigada Paula!",
			Rating:     5,
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			AuthorName: "João Santos",
			Content:    "Encomendei um bolo de aniversário para minha esposa e ela amou! Além de lindo, estava delicioso.",
			Rating:     5,
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			AuthorName: "Ana Paula Costa",
			Content:    "Profissionalismo e carinho em cada detalhe. Já é a terceira vez que encomendo e sempre supera minhas expectativas!",
			Rating:     5,
			CreatedAt:  now,
		},
	}
	if err := s.db.Create(&seedTestimonials).Error; err != nil {
		return false, err
	}

	return true, nil
}
