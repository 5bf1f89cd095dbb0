package dto

// ReservationView is the denormalized creation response: service and
// barber names are resolved at creation time, never stored on the row.
type ReservationView struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	ServiceName  string `json:"service_name"`
	BarberName   string `json:"barber_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
}

// BarberSummary is the public shape of a barber (no credentials).
type BarberSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Phone string `json:"phone,omitempty"`
}

// ReservationListDTO backs the barber dashboard listing.
type ReservationListDTO struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	ServiceID     string `json:"service_id"`
	ServiceName   string `json:"service_name"`
	DurationMin   int    `json:"duration_minutes"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}
