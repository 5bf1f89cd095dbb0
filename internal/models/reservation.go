package models

import "time"

// Reservation timestamps are stored as naive ISO-8601 strings
// ("2006-01-02T15:04:05", no offset) and round-tripped verbatim.
type Reservation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	ServiceID string  `gorm:"size:36;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID string `gorm:"size:36;not null;index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartTime string `gorm:"size:19;not null" json:"start_time"`
	EndTime   string `gorm:"size:19;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
