package models

import "time"

type Barber struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Bio          string `gorm:"size:255" json:"bio"`
	Active       bool   `gorm:"default:true" json:"is_active"`

	// Offerings: a barber is only matched for services they declare.
	Services []Service `gorm:"many2many:barber_services;constraint:OnDelete:CASCADE;" json:"services,omitempty"`

	Windows []AvailabilityWindow `gorm:"foreignKey:BarberID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
