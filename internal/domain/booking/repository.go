package booking

import (
	"context"

	"github.com/sebastian26-ui/barbershop-backend/internal/models"
)

// Repository is the persistence surface the booking core depends on.
// Backend choice (postgres vs sqlite) lives entirely behind it.
type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	GetActiveService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	// Active barbers offering the service, ordered by name ascending.
	ListActiveBarbersForService(
		ctx context.Context,
		serviceID string,
	) ([]models.Barber, error)

	// -------- Availability --------
	ListActiveWindows(
		ctx context.Context,
		barberID string,
	) ([]models.AvailabilityWindow, error)

	CreateWindow(
		ctx context.Context,
		w *models.AvailabilityWindow,
	) error

	// Hard delete; deleting an unknown id is a silent success.
	DeleteWindow(
		ctx context.Context,
		id string,
	) error

	// -------- Reservation --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// Last-write-wins; updating an unknown id affects zero rows and
	// still succeeds.
	UpdateReservationStatus(
		ctx context.Context,
		id string,
		status string,
	) error
}
