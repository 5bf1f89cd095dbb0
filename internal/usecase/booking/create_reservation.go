package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sebastian26-ui/barbershop-backend/internal/audit"
	domain "github.com/sebastian26-ui/barbershop-backend/internal/domain/booking"
	"github.com/sebastian26-ui/barbershop-backend/internal/dto"
	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
	"github.com/sebastian26-ui/barbershop-backend/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID string
	BarberID  string

	StartTime string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute persists exactly one reservation row with status PENDING and
// returns the denormalized view. The factory does not re-check
// availability: callers are expected to consult FindAvailableBarbers
// first, and a caller that doesn't can double-book.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*dto.ReservationView, error) {

	if in.CustomerName == "" || in.ServiceID == "" || in.BarberID == "" || in.StartTime == "" {
		return nil, httperr.ErrValidation("missing_required_fields")
	}

	// Service first, then barber: each resolved independently.
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	start, err := timeutil.ParseNaive(in.StartTime)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	r := &models.Reservation{
		ID:            uuid.NewString(),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		ServiceID:     svc.ID,
		BarberID:      barber.ID,
		StartTime:     timeutil.FormatNaive(start),
		EndTime:       timeutil.FormatNaive(end),
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateReservation(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &r.BarberID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &r.ID,
	})

	return &dto.ReservationView{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		ServiceName:  svc.Name,
		BarberName:   barber.Name,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Status:       r.Status,
	}, nil
}
