package override

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abuelosolos/Fara/internal/availability"
)

type memRepo struct {
	rows map[time.Time]*Override
}

func newMemRepo() *memRepo { return &memRepo{rows: make(map[time.Time]*Override)} }

func (m *memRepo) List(ctx context.Context, from *time.Time) ([]*Override, error) {
	var out []*Override
	for d, o := range m.rows {
		if from == nil || !d.Before(*from) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *memRepo) Get(ctx context.Context, date time.Time) (*Override, error) {
	o, ok := m.rows[date]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *memRepo) Upsert(ctx context.Context, o *Override) error {
	o.UpdatedAt = time.Now()
	m.rows[o.Date] = o
	return nil
}

func (m *memRepo) Delete(ctx context.Context, date time.Time) error {
	if _, ok := m.rows[date]; !ok {
		return ErrNotFound
	}
	delete(m.rows, date)
	return nil
}

func TestService_Put(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	o, err := svc.Put(ctx, PutRequest{Date: "2026-03-03", Hours: []string{"10:00 AM", "12:00 PM", "3:00 PM"}})
	require.NoError(t, err)
	assert.Equal(t, []availability.TimeOfDay{600, 720, 900}, o.Hours)

	got, err := svc.Get(ctx, "2026-03-03")
	require.NoError(t, err)
	assert.False(t, got.Blocked)

	blocked, err := svc.Put(ctx, PutRequest{Date: "2026-03-03", Blocked: true, Hours: []string{"not a time"}})
	require.NoError(t, err, "hours are ignored for a blocked day")
	assert.True(t, blocked.Blocked)
	assert.Empty(t, blocked.Hours)
}

func TestService_Put_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	_, err := svc.Put(ctx, PutRequest{Date: "3/3/2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Put(ctx, PutRequest{Date: "2026-03-03", Hours: []string{"10:00"}})
	assert.ErrorIs(t, err, availability.ErrMalformedTime)

	_, err = svc.Put(ctx, PutRequest{Date: "2026-03-03", Hours: []string{"1:00 PM", "10:00 AM"}})
	assert.ErrorIs(t, err, ErrHoursOrder)

	_, err = svc.Put(ctx, PutRequest{Date: "2026-03-03", Hours: []string{"1:00 PM", "1:00 PM"}})
	assert.ErrorIs(t, err, ErrHoursOrder)
}

func TestService_DayOverrides(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	_, err := svc.Put(ctx, PutRequest{Date: "2026-03-05", Blocked: true})
	require.NoError(t, err)
	_, err = svc.Put(ctx, PutRequest{Date: "2026-03-06", Hours: []string{"11:00 AM", "4:00 PM"}})
	require.NoError(t, err)

	days, err := svc.DayOverrides(ctx)
	require.NoError(t, err)

	assert.Equal(t, map[string]availability.DayOverride{
		"2026-03-05": {Date: "2026-03-05", Blocked: true},
		"2026-03-06": {Date: "2026-03-06", Hours: []availability.TimeOfDay{660, 960}},
	}, days)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	_, err := svc.Put(ctx, PutRequest{Date: "2026-03-05", Blocked: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "2026-03-05"))
	assert.ErrorIs(t, svc.Delete(ctx, "2026-03-05"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "tomorrow"), ErrInvalidDate)
}
