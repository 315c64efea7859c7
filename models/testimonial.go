package models

import "time"

type Testimonial struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	AuthorName string    `gorm:"not null" json:"author_name"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
