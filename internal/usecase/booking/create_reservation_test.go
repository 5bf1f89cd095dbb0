package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
)

func newFactoryRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 45, true)
	repo.addBarber("b1", "Carlos", true, "fade")
	return repo
}

func TestCreateReservation(t *testing.T) {
	repo := newFactoryRepo()
	uc := NewCreateReservation(repo, nil)

	view, err := uc.Execute(context.Background(), CreateReservationInput{
		CustomerName: "Ana",
		ServiceID:    "fade",
		BarberID:     "b1",
		StartTime:    "2024-03-01T10:00:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Ana", view.CustomerName)
	assert.Equal(t, "Fade", view.ServiceName)
	assert.Equal(t, "Carlos", view.BarberName)
	assert.Equal(t, "2024-03-01T10:00:00", view.StartTime)
	assert.Equal(t, "2024-03-01T10:45:00", view.EndTime)
	assert.Equal(t, "PENDING", view.Status)

	require.Len(t, repo.reservations, 1)
	stored := repo.reservations[view.ID]
	assert.Equal(t, "fade", stored.ServiceID)
	assert.Equal(t, "b1", stored.BarberID)
	assert.Equal(t, "PENDING", stored.Status)
}

func TestCreateReservationStripsOffsetMarkers(t *testing.T) {
	uc := NewCreateReservation(newFactoryRepo(), nil)

	view, err := uc.Execute(context.Background(), CreateReservationInput{
		CustomerName: "Ana",
		ServiceID:    "fade",
		BarberID:     "b1",
		StartTime:    "2024-03-01T10:00:00Z",
	})
	require.NoError(t, err)

	// The Z is discarded, not converted: the clock values stay put.
	assert.Equal(t, "2024-03-01T10:00:00", view.StartTime)
	assert.Equal(t, "2024-03-01T10:45:00", view.EndTime)
}

func TestCreateReservationMissingFields(t *testing.T) {
	repo := newFactoryRepo()
	uc := NewCreateReservation(repo, nil)

	inputs := []CreateReservationInput{
		{ServiceID: "fade", BarberID: "b1", StartTime: "2024-03-01T10:00:00"},
		{CustomerName: "Ana", BarberID: "b1", StartTime: "2024-03-01T10:00:00"},
		{CustomerName: "Ana", ServiceID: "fade", StartTime: "2024-03-01T10:00:00"},
		{CustomerName: "Ana", ServiceID: "fade", BarberID: "b1"},
	}

	for _, in := range inputs {
		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsValidation(err))
	}

	assert.Empty(t, repo.reservations)
}

func TestCreateReservationUnknownService(t *testing.T) {
	repo := newFactoryRepo()
	uc := NewCreateReservation(repo, nil)

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		CustomerName: "Ana",
		ServiceID:    "nope",
		BarberID:     "b1",
		StartTime:    "2024-03-01T10:00:00",
	})
	require.True(t, httperr.IsNotFound(err))
	assert.Equal(t, "service_not_found", err.Error())
	assert.Empty(t, repo.reservations)
}

func TestCreateReservationUnknownBarber(t *testing.T) {
	repo := newFactoryRepo()
	uc := NewCreateReservation(repo, nil)

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		CustomerName: "Ana",
		ServiceID:    "fade",
		BarberID:     "nope",
		StartTime:    "2024-03-01T10:00:00",
	})
	require.True(t, httperr.IsNotFound(err))
	assert.Equal(t, "barber_not_found", err.Error())
	assert.Empty(t, repo.reservations)
}

// Both references missing: the service is checked first.
func TestCreateReservationChecksServiceBeforeBarber(t *testing.T) {
	uc := NewCreateReservation(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		CustomerName: "Ana",
		ServiceID:    "nope",
		BarberID:     "also-nope",
		StartTime:    "2024-03-01T10:00:00",
	})
	require.True(t, httperr.IsNotFound(err))
	assert.Equal(t, "service_not_found", err.Error())
}

func TestCreateReservationBadTimestamp(t *testing.T) {
	repo := newFactoryRepo()
	uc := NewCreateReservation(repo, nil)

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		CustomerName: "Ana",
		ServiceID:    "fade",
		BarberID:     "b1",
		StartTime:    "next tuesday",
	})
	require.Error(t, err)
	assert.False(t, httperr.IsValidation(err))
	assert.False(t, httperr.IsNotFound(err))
	assert.Empty(t, repo.reservations)
}

// The factory trusts its caller: no window has to exist for the slot,
// and an already-booked slot books again. Preserved behavior, not a bug
// to patch here.
func TestCreateReservationDoesNotCheckAvailability(t *testing.T) {
	repo := newFactoryRepo()
	uc := NewCreateReservation(repo, nil)

	in := CreateReservationInput{
		CustomerName: "Ana",
		ServiceID:    "fade",
		BarberID:     "b1",
		StartTime:    "2024-03-01T10:00:00",
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	in.CustomerName = "Luis"
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Len(t, repo.reservations, 2)
}
