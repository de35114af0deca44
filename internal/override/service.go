package override

import (
	"context"
	"fmt"
	"time"

	"github.com/abuelosolos/Fara/internal/availability"
)

type PutRequest struct {
	Date    string
	Blocked bool
	Hours   []string
}

type Service interface {
	List(ctx context.Context, from *time.Time) ([]*Override, error)
	Get(ctx context.Context, date string) (*Override, error)
	Put(ctx context.Context, req PutRequest) (*Override, error)
	Delete(ctx context.Context, date string) error

	// DayOverrides returns every override keyed by ISO date.
	DayOverrides(ctx context.Context) (map[string]availability.DayOverride, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func parseDate(s string) (time.Time, error) {
	d, err := availability.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

func (s *service) List(ctx context.Context, from *time.Time) ([]*Override, error) {
	return s.repo.List(ctx, from)
}

func (s *service) Get(ctx context.Context, date string) (*Override, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, d)
}

func (s *service) Put(ctx context.Context, req PutRequest) (*Override, error) {
	d, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	o := &Override{Date: d, Blocked: req.Blocked}
	if !req.Blocked {
		for i, raw := range req.Hours {
			t, err := availability.ParseTimeOfDay(raw)
			if err != nil {
				return nil, err
			}
			if i > 0 && t <= o.Hours[i-1] {
				return nil, ErrHoursOrder
			}
			o.Hours = append(o.Hours, t)
		}
	}

	if err := s.repo.Upsert(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, date string) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, d)
}

func (s *service) DayOverrides(ctx context.Context) (map[string]availability.DayOverride, error) {
	list, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	out := make(map[string]availability.DayOverride, len(list))
	for _, o := range list {
		day := o.DayOverride()
		out[day.Date] = day
	}
	return out, nil
}
