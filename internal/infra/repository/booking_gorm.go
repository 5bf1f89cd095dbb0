package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sebastian26-ui/barbershop-backend/internal/domain/booking"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) ListActiveBarbersForService(
	ctx context.Context,
	serviceID string,
) ([]models.Barber, error) {

	var barbers []models.Barber
	err := r.db.WithContext(ctx).
		Distinct("barbers.*").
		Joins("JOIN barber_services bs ON bs.barber_id = barbers.id").
		Where("bs.service_id = ? AND barbers.active = ?", serviceID, true).
		Order("barbers.name ASC").
		Find(&barbers).Error
	if err != nil {
		return nil, err
	}

	return barbers, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveWindows(
	ctx context.Context,
	barberID string,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND active = ?", barberID, true).
		Order("COALESCE(specific_date, '9999-99-99') ASC, day_of_week ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *BookingGormRepository) CreateWindow(
	ctx context.Context,
	w *models.AvailabilityWindow,
) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *BookingGormRepository) DeleteWindow(
	ctx context.Context,
	id string,
) error {
	// Zero rows affected is fine: delete is idempotent.
	return r.db.WithContext(ctx).
		Delete(&models.AvailabilityWindow{}, "id = ?", id).Error
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *BookingGormRepository) UpdateReservationStatus(
	ctx context.Context,
	id string,
	status string,
) error {
	// No existence check: updating an unknown id affects zero rows and
	// reports success, matching the lifecycle contract.
	return r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
