package booking

import (
	"context"
	"time"

	domain "github.com/sebastian26-ui/barbershop-backend/internal/domain/booking"
	"github.com/sebastian26-ui/barbershop-backend/internal/dto"
	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
	"github.com/sebastian26-ui/barbershop-backend/internal/timeutil"
)

// ======================================================
// USE CASE
// ======================================================

type FindAvailableBarbers struct {
	repo domain.Repository
}

func NewFindAvailableBarbers(repo domain.Repository) *FindAvailableBarbers {
	return &FindAvailableBarbers{repo: repo}
}

// Execute resolves which barbers can take the slot implied by the service
// and requested start. It only consults declared availability windows,
// not existing reservations, so two bookings for the same slot can both
// pass — last-write-wins, no isolation (documented limitation).
func (uc *FindAvailableBarbers) Execute(
	ctx context.Context,
	serviceID string,
	requestedStart string,
) ([]dto.BarberSummary, error) {

	if serviceID == "" || requestedStart == "" {
		return nil, httperr.ErrValidation("missing_parameters")
	}

	svc, err := uc.repo.GetActiveService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	start, err := timeutil.ParseNaive(requestedStart)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	slot := domain.Slot{
		Date:      timeutil.CalendarDate(start),
		DayOfWeek: timeutil.DayOfWeek(start),
		Start:     timeutil.TimeOfDay(start),
		End:       timeutil.TimeOfDay(end),
	}

	// Already distinct and name-ordered from the repository.
	barbers, err := uc.repo.ListActiveBarbersForService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BarberSummary, 0, len(barbers))
	for _, b := range barbers {
		windows, err := uc.repo.ListActiveWindows(ctx, b.ID)
		if err != nil {
			return nil, err
		}

		if domain.AnyWindowCovers(windows, slot) {
			out = append(out, dto.BarberSummary{
				ID:   b.ID,
				Name: b.Name,
				Bio:  b.Bio,
			})
		}
	}

	return out, nil
}
