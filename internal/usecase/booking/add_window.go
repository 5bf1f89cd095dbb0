package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sebastian26-ui/barbershop-backend/internal/audit"
	domain "github.com/sebastian26-ui/barbershop-backend/internal/domain/booking"
	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddWindowInput struct {
	BarberID string

	// One of the two must be set. When both are, the specific date wins
	// at match time, so the recurring half is effectively inert.
	DayOfWeek    *int
	SpecificDate *string

	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"

	Available bool
}

// ======================================================
// USE CASE
// ======================================================

type AddWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddWindow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddWindow {
	return &AddWindow{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddWindow) Execute(
	ctx context.Context,
	in AddWindowInput,
) (string, error) {

	if in.BarberID == "" || in.StartTime == "" || in.EndTime == "" {
		return "", httperr.ErrValidation("missing_required_fields")
	}

	hasDay := in.DayOfWeek != nil
	hasDate := in.SpecificDate != nil && *in.SpecificDate != ""
	if !hasDay && !hasDate {
		return "", httperr.ErrValidation("missing_day_or_date")
	}

	if hasDay && (*in.DayOfWeek < 0 || *in.DayOfWeek > 6) {
		return "", httperr.ErrValidation("invalid_day_of_week")
	}

	// Times must be zero-padded "HH:MM" or the lexicographic window
	// matching breaks, so the format is checked on the way in.
	if !validHM(in.StartTime) || !validHM(in.EndTime) {
		return "", httperr.ErrValidation("invalid_time_format")
	}

	if in.StartTime >= in.EndTime {
		return "", httperr.ErrValidation("start_not_before_end")
	}

	w := &models.AvailabilityWindow{
		ID:           uuid.NewString(),
		BarberID:     in.BarberID,
		DayOfWeek:    in.DayOfWeek,
		SpecificDate: in.SpecificDate,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Available:    in.Available,
		Active:       true,
	}

	if err := uc.repo.CreateWindow(ctx, w); err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &w.BarberID,
		Action:   "availability_added",
		Entity:   "availability_window",
		EntityID: &w.ID,
	})

	return w.ID, nil
}

func validHM(hm string) bool {
	if len(hm) != 5 {
		return false
	}
	_, err := time.Parse("15:04", hm)
	return err == nil
}
