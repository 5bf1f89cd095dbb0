package booking

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/sebastian26-ui/barbershop-backend/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository so the use
// cases can be exercised without a database.
type fakeRepo struct {
	services     map[string]models.Service
	barbers      map[string]models.Barber
	offerings    map[string][]string // barberID -> serviceIDs
	windows      map[string][]models.AvailabilityWindow
	reservations map[string]models.Reservation

	createdWindows []models.AvailabilityWindow
	deletedWindows []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     make(map[string]models.Service),
		barbers:      make(map[string]models.Barber),
		offerings:    make(map[string][]string),
		windows:      make(map[string][]models.AvailabilityWindow),
		reservations: make(map[string]models.Reservation),
	}
}

func (f *fakeRepo) addService(id, name string, durationMin int, active bool) {
	f.services[id] = models.Service{ID: id, Name: name, DurationMin: durationMin, Active: active}
}

func (f *fakeRepo) addBarber(id, name string, active bool, serviceIDs ...string) {
	f.barbers[id] = models.Barber{ID: id, Name: name, Active: active}
	f.offerings[id] = serviceIDs
}

func (f *fakeRepo) addWindow(barberID string, w models.AvailabilityWindow) {
	w.BarberID = barberID
	f.windows[barberID] = append(f.windows[barberID], w)
}

func (f *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &svc, nil
}

func (f *fakeRepo) GetActiveService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := f.GetService(ctx, id)
	if err != nil || !svc.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeRepo) ListActiveBarbersForService(_ context.Context, serviceID string) ([]models.Barber, error) {
	var out []models.Barber
	for barberID, serviceIDs := range f.offerings {
		b := f.barbers[barberID]
		if !b.Active {
			continue
		}
		for _, id := range serviceIDs {
			if id == serviceID {
				out = append(out, b)
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepo) ListActiveWindows(_ context.Context, barberID string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range f.windows[barberID] {
		if w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateWindow(_ context.Context, w *models.AvailabilityWindow) error {
	f.windows[w.BarberID] = append(f.windows[w.BarberID], *w)
	f.createdWindows = append(f.createdWindows, *w)
	return nil
}

func (f *fakeRepo) DeleteWindow(_ context.Context, id string) error {
	f.deletedWindows = append(f.deletedWindows, id)
	for barberID, windows := range f.windows {
		kept := windows[:0]
		for _, w := range windows {
			if w.ID != id {
				kept = append(kept, w)
			}
		}
		f.windows[barberID] = kept
	}
	return nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, r *models.Reservation) error {
	f.reservations[r.ID] = *r
	return nil
}

func (f *fakeRepo) UpdateReservationStatus(_ context.Context, id, status string) error {
	// Mirrors the SQL UPDATE: zero matched rows is still a success.
	if r, ok := f.reservations[id]; ok {
		r.Status = status
		f.reservations[id] = r
	}
	return nil
}
