package models

import "time"

// Cake is a catalog entry shown on the public site. CategoryID is a soft
// reference: categories can be deleted without cascading here, so orphaned
// references are allowed.
type Cake struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CategoryID   string    `gorm:"index" json:"category_id"`
	ImageURL     string    `json:"image_url"`
	InstagramURL *string   `gorm:"index" json:"instagram_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}
