package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abuelosolos/Fara/internal/availability"
)

type memRepo struct {
	rows map[string]*Reservation
}

func newMemRepo() *memRepo { return &memRepo{rows: make(map[string]*Reservation)} }

func (m *memRepo) Create(ctx context.Context, r *Reservation) error {
	r.ID = uuid.NewString()
	m.rows[r.ID] = r
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*Reservation, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (m *memRepo) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	var out []*Reservation
	for _, r := range m.rows {
		if filter.Status == "" || string(r.Status) == filter.Status {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

func (m *memRepo) ListConfirmed(ctx context.Context, from, to time.Time) ([]*Reservation, error) {
	var out []*Reservation
	for _, r := range m.rows {
		if r.Status == StatusConfirmed && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateStatus(ctx context.Context, id string, next Status, guard GuardFunc) (*Reservation, error) {
	target, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	var confirmed []*Reservation
	for _, r := range m.rows {
		if r.ID != id && r.Status == StatusConfirmed && r.Date.Equal(target.Date) {
			confirmed = append(confirmed, r)
		}
	}
	if err := guard(target, confirmed); err != nil {
		return nil, err
	}
	target.Status = next
	return target, nil
}

type staticCatalog availability.Catalog

func (c staticCatalog) CatalogSnapshot(ctx context.Context) (availability.Catalog, error) {
	return availability.Catalog(c), nil
}

var testCatalog = staticCatalog{Version: 1, Durations: map[string]int{
	"Wig Installation": 90,
	"Retouching":       150,
	"Hair Grooming":    120,
}}

func newTestService(repo Repository) *service {
	s := NewService(repo, testCatalog, time.UTC).(*service)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func book(t *testing.T, s Service, date, start, svc string) *Reservation {
	t.Helper()
	r, err := s.Create(context.Background(), CreateRequest{
		Date:          date,
		StartTime:     start,
		Service:       svc,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
	})
	require.NoError(t, err)
	return r
}

func TestService_Create(t *testing.T) {
	s := newTestService(newMemRepo())

	r := book(t, s, "2026-03-02", "09:00 am", "Wig Installation")

	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, "9:00 AM", r.StartTime)
	assert.Equal(t, "90 mins", r.Duration)
	assert.NotEmpty(t, r.ID)
}

func TestService_Create_Validation(t *testing.T) {
	s := newTestService(newMemRepo())
	ctx := context.Background()
	valid := CreateRequest{Date: "2026-03-02", StartTime: "9:00 AM", Service: "Retouching", CustomerName: "Ada", CustomerEmail: "ada@example.com"}

	req := valid
	req.Date = "2026-02-28"
	_, err := s.Create(ctx, req)
	assert.ErrorIs(t, err, ErrDateInPast)

	req = valid
	req.Date = "March 2"
	_, err = s.Create(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = valid
	req.StartTime = "9am"
	_, err = s.Create(ctx, req)
	assert.ErrorIs(t, err, availability.ErrMalformedTime)

	req = valid
	req.Service = "Manicure"
	_, err = s.Create(ctx, req)
	assert.ErrorIs(t, err, availability.ErrUnknownService)

	req = valid
	req.CustomerEmail = " "
	_, err = s.Create(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus_Transitions(t *testing.T) {
	s := newTestService(newMemRepo())
	ctx := context.Background()
	r := book(t, s, "2026-03-02", "9:00 AM", "Retouching")

	_, err := s.UpdateStatus(ctx, r.ID, StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := s.UpdateStatus(ctx, r.ID, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)

	got, err = s.UpdateStatus(ctx, r.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)

	_, err = s.UpdateStatus(ctx, r.ID, StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateStatus(ctx, r.ID, Status("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = s.UpdateStatus(ctx, uuid.NewString(), StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Confirm_CrossServiceConflict(t *testing.T) {
	s := newTestService(newMemRepo())
	ctx := context.Background()

	retouch := book(t, s, "2026-03-02", "9:00 AM", "Retouching")
	_, err := s.UpdateStatus(ctx, retouch.ID, StatusConfirmed)
	require.NoError(t, err)

	clash := book(t, s, "2026-03-02", "11:00 AM", "Hair Grooming")
	_, err = s.UpdateStatus(ctx, clash.ID, StatusConfirmed)
	assert.ErrorIs(t, err, ErrTimeConflict)

	touching := book(t, s, "2026-03-02", "11:30 AM", "Hair Grooming")
	_, err = s.UpdateStatus(ctx, touching.ID, StatusConfirmed)
	assert.NoError(t, err)

	otherDay := book(t, s, "2026-03-03", "9:00 AM", "Wig Installation")
	_, err = s.UpdateStatus(ctx, otherDay.ID, StatusConfirmed)
	assert.NoError(t, err)

	// a cancelled booking frees its slot
	_, err = s.UpdateStatus(ctx, retouch.ID, StatusCancelled)
	require.NoError(t, err)
	_, err = s.UpdateStatus(ctx, clash.ID, StatusConfirmed)
	assert.ErrorIs(t, err, ErrTimeConflict, "still overlaps the 11:30 booking")
}

func TestService_ConfirmedReservations(t *testing.T) {
	s := newTestService(newMemRepo())
	ctx := context.Background()

	r := book(t, s, "2026-03-02", "9:00 AM", "Retouching")
	book(t, s, "2026-03-02", "1:00 PM", "Wig Installation")
	_, err := s.UpdateStatus(ctx, r.ID, StatusConfirmed)
	require.NoError(t, err)

	from, _ := availability.ParseDate("2026-03-01")
	to, _ := availability.ParseDate("2026-04-30")
	got, err := s.ConfirmedReservations(ctx, from, to)
	require.NoError(t, err)

	assert.Equal(t, []availability.Reservation{
		{Date: "2026-03-02", Start: "9:00 AM", Service: "Retouching", Duration: "150 mins"},
	}, got)
}
