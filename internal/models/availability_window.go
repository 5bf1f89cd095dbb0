package models

import "time"

// AvailabilityWindow is either recurring (DayOfWeek set, 0=Sunday..6=Saturday)
// or a one-off override (SpecificDate set, "YYYY-MM-DD"). Start/End are local
// times of day stored as zero-padded "HH:MM" strings.
type AvailabilityWindow struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	BarberID string `gorm:"size:36;index;not null" json:"barber_id"`

	DayOfWeek    *int    `json:"day_of_week"`
	SpecificDate *string `gorm:"size:10" json:"specific_date"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	// Available=false marks an explicit blackout; Active=false is a soft delete.
	Available bool `gorm:"default:true" json:"is_available"`
	Active    bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
