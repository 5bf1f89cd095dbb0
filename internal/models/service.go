package models

import "time"

// Service ids are slugs ("fade", "corte-clasico") so the booking page can
// link them directly; admin-created services get a uuid instead.
type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_minutes"`
	Category    string  `gorm:"size:50" json:"category"`
	Active      bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
