package booking

import (
	"context"

	"github.com/sebastian26-ui/barbershop-backend/internal/audit"
	domain "github.com/sebastian26-ui/barbershop-backend/internal/domain/booking"
	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
)

type RemoveWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveWindow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveWindow {
	return &RemoveWindow{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes the window. Removing an id that no longer exists
// is a success, so the call is idempotent.
func (uc *RemoveWindow) Execute(
	ctx context.Context,
	windowID string,
) error {

	if windowID == "" {
		return httperr.ErrValidation("missing_window_id")
	}

	if err := uc.repo.DeleteWindow(ctx, windowID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "availability_removed",
		Entity:   "availability_window",
		EntityID: &windowID,
	})

	return nil
}
