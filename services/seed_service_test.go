package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SallesND3V/Doceiria-Mockup-Site/models"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSeedService(db)

	created, err := svc.Seed()
	require.NoError(t, err)
	assert.True(t, created)

	var categories, cakes, testimonials int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Cake{}).Count(&cakes).Error)
	require.NoError(t, db.Model(&models.Testimonial{}).Count(&testimonials).Error)
	assert.EqualValues(t, 3, categories)
	assert.EqualValues(t, 6, cakes)
	assert.EqualValues(t, 3, testimonials)

	// Second run must be a no-op with the data untouched.
	created, err = svc.Seed()
	require.NoError(t, err)
	assert.False(t, created)

	var categoriesAfter, cakesAfter int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categoriesAfter).Error)
	require.NoError(t, db.Model(&models.Cake{}).Count(&cakesAfter).Error)
	assert.Equal(t, categories, categoriesAfter)
	assert.Equal(t, cakes, cakesAfter)
}

func TestSeedSkipsWhenAnyDataExists(t *testing.T) {
	db := newTestDB(t)

	// A single hand-created cake is enough to make the seed a no-op.
	_, err := NewCatalogService(db).CreateCake(CakeInput{Name: "Bolo artesanal"})
	require.NoError(t, err)

	created, err := NewSeedService(db).Seed()
	require.NoError(t, err)
	assert.False(t, created)

	var categories int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	assert.EqualValues(t, 0, categories)
}
