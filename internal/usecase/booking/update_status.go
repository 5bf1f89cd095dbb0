package booking

import (
	"context"

	"github.com/sebastian26-ui/barbershop-backend/internal/audit"
	domain "github.com/sebastian26-ui/barbershop-backend/internal/domain/booking"
	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
)

type UpdateReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute overwrites the status field. Any non-empty string is accepted —
// there is no transition state machine — and an update to an unknown id
// affects zero rows and still succeeds.
func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	reservationID string,
	status string,
) error {

	if reservationID == "" || status == "" {
		return httperr.ErrValidation("missing_status")
	}

	if err := uc.repo.UpdateReservationStatus(ctx, reservationID, status); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_status_updated",
		Entity:   "reservation",
		EntityID: &reservationID,
		Metadata: map[string]string{"status": status},
	})

	return nil
}
