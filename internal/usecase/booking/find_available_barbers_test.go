package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func weeklyWindow(dow int, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		DayOfWeek: intPtr(dow),
		StartTime: start,
		EndTime:   end,
		Available: true,
		Active:    true,
	}
}

func dateWindow(date, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		SpecificDate: strPtr(date),
		StartTime:    start,
		EndTime:      end,
		Available:    true,
		Active:       true,
	}
}

// 2024-03-05 is a Tuesday (day index 2).
const tuesdayTen = "2024-03-05T10:00:00"

func TestFindAvailableBarbersMatchesCoveringWindow(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 45, true)
	repo.addBarber("b1", "Carlos", true, "fade")
	repo.addWindow("b1", weeklyWindow(2, "09:00", "18:00"))

	uc := NewFindAvailableBarbers(repo)

	got, err := uc.Execute(context.Background(), "fade", tuesdayTen)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "Carlos", got[0].Name)
}

func TestFindAvailableBarbersExcludesPartialCoverage(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 45, true)
	repo.addBarber("b1", "Carlos", true, "fade")
	// Window ends 10:30; the 10:00 slot needs coverage through 10:45.
	repo.addWindow("b1", weeklyWindow(2, "09:00", "10:30"))

	uc := NewFindAvailableBarbers(repo)

	got, err := uc.Execute(context.Background(), "fade", tuesdayTen)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindAvailableBarbersSpecificDateAndRecurringAreIndependentPaths(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 45, true)

	// Ana matches through a one-off date, Bruno through his weekly window.
	repo.addBarber("b1", "Ana", true, "fade")
	repo.addWindow("b1", dateWindow("2024-03-05", "08:00", "12:00"))

	repo.addBarber("b2", "Bruno", true, "fade")
	repo.addWindow("b2", weeklyWindow(2, "09:00", "18:00"))

	// Carla's one-off is for another date; its weekday field is ignored.
	repo.addBarber("b3", "Carla", true, "fade")
	w := dateWindow("2024-03-12", "08:00", "18:00")
	w.DayOfWeek = intPtr(2)
	repo.addWindow("b3", w)

	uc := NewFindAvailableBarbers(repo)

	got, err := uc.Execute(context.Background(), "fade", tuesdayTen)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "Bruno", got[1].Name)
}

func TestFindAvailableBarbersFiltersBarbers(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 45, true)

	// Inactive barber with a perfect window.
	repo.addBarber("b1", "Ana", false, "fade")
	repo.addWindow("b1", weeklyWindow(2, "09:00", "18:00"))

	// Active barber who does not offer the service.
	repo.addBarber("b2", "Bruno", true)
	repo.addWindow("b2", weeklyWindow(2, "09:00", "18:00"))

	// Active barber offering the service but with a blackout.
	repo.addBarber("b3", "Carla", true, "fade")
	blackout := weeklyWindow(2, "09:00", "18:00")
	blackout.Available = false
	repo.addWindow("b3", blackout)

	uc := NewFindAvailableBarbers(repo)

	got, err := uc.Execute(context.Background(), "fade", tuesdayTen)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindAvailableBarbersOrdersByName(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 45, true)

	repo.addBarber("b2", "Zoe", true, "fade")
	repo.addWindow("b2", weeklyWindow(2, "09:00", "18:00"))
	repo.addBarber("b1", "Ana", true, "fade")
	repo.addWindow("b1", weeklyWindow(2, "09:00", "18:00"))

	uc := NewFindAvailableBarbers(repo)

	got, err := uc.Execute(context.Background(), "fade", tuesdayTen)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "Zoe", got[1].Name)
}

func TestFindAvailableBarbersMidnightCrossingSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 60, true)
	repo.addBarber("b1", "Carlos", true, "fade")
	repo.addWindow("b1", weeklyWindow(2, "00:00", "23:59"))

	uc := NewFindAvailableBarbers(repo)

	// 23:30 + 60min wraps to 00:30 the next day; the end-of-day string
	// comparison guarantees no window ever covers it.
	got, err := uc.Execute(context.Background(), "fade", "2024-03-05T23:30:00")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindAvailableBarbersServiceErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("retired", "Retired Cut", 30, false)

	uc := NewFindAvailableBarbers(repo)

	_, err := uc.Execute(context.Background(), "nope", tuesdayTen)
	assert.True(t, httperr.IsNotFound(err))

	// Inactive services resolve the same as missing ones.
	_, err = uc.Execute(context.Background(), "retired", tuesdayTen)
	assert.True(t, httperr.IsNotFound(err))
}

func TestFindAvailableBarbersValidatesParams(t *testing.T) {
	uc := NewFindAvailableBarbers(newFakeRepo())

	_, err := uc.Execute(context.Background(), "", tuesdayTen)
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(context.Background(), "fade", "")
	assert.True(t, httperr.IsValidation(err))
}

func TestFindAvailableBarbersBadTimestampIsInternal(t *testing.T) {
	repo := newFakeRepo()
	repo.addService("fade", "Fade", 45, true)

	uc := NewFindAvailableBarbers(repo)

	_, err := uc.Execute(context.Background(), "fade", "yesterday at noon")
	require.Error(t, err)
	assert.False(t, httperr.IsNotFound(err))
	assert.False(t, httperr.IsValidation(err))
}
