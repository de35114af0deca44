package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abuelosolos/Fara/internal/availability"
)

type CreateRequest struct {
	Date          string
	StartTime     string
	Service       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error)

	// ConfirmedReservations feeds the availability engine.
	ConfirmedReservations(ctx context.Context, from, to time.Time) ([]availability.Reservation, error)
}

type service struct {
	repo    Repository
	catalog availability.CatalogSource
	loc     *time.Location
	now     func() time.Time
}

// NewService builds the reservation service. loc is the business time zone
// used to decide whether a date is in the past.
func NewService(repo Repository, catalog availability.CatalogSource, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{repo: repo, catalog: catalog, loc: loc, now: time.Now}
}

func (s *service) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	date, err := availability.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrInvalidInput, req.Date)
	}
	if date.Before(s.today()) {
		return nil, ErrDateInPast
	}

	start, err := availability.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.CustomerName)
	email := strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: customer name and email are required", ErrInvalidInput)
	}

	cat, err := s.catalog.CatalogSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	minutes, err := cat.Duration(req.Service)
	if err != nil {
		return nil, err
	}

	r := &Reservation{
		Date:          date,
		StartTime:     start.String(),
		Service:       req.Service,
		Duration:      fmt.Sprintf("%d mins", minutes),
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Notes:         strings.TrimSpace(req.Notes),
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	if filter.Status != "" && !Status(filter.Status).Valid() {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Reservation, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var cat availability.Catalog
	if status == StatusConfirmed {
		var err error
		if cat, err = s.catalog.CatalogSnapshot(ctx); err != nil {
			return nil, err
		}
	}

	return s.repo.UpdateStatus(ctx, id, status, func(target *Reservation, confirmed []*Reservation) error {
		if !target.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, target.Status, status)
		}
		if status == StatusConfirmed {
			return checkConflict(target, confirmed, cat)
		}
		return nil
	})
}

// checkConflict rejects target when its occupied range meets any other
// confirmed reservation that day, whatever the service.
func checkConflict(target *Reservation, confirmed []*Reservation, cat availability.Catalog) error {
	others := make([]availability.Reservation, len(confirmed))
	for i, r := range confirmed {
		others[i] = r.Engine()
	}
	busy, err := availability.BuildBusyRanges(others, cat)
	if err != nil {
		return err
	}
	own, err := availability.BuildBusyRanges([]availability.Reservation{target.Engine()}, cat)
	if err != nil {
		return err
	}

	for _, b := range busy {
		if b.Overlaps(own[0].Start, own[0].End) {
			return ErrTimeConflict
		}
	}
	return nil
}

func (s *service) ConfirmedReservations(ctx context.Context, from, to time.Time) ([]availability.Reservation, error) {
	list, err := s.repo.ListConfirmed(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]availability.Reservation, len(list))
	for i, r := range list {
		out[i] = r.Engine()
	}
	return out, nil
}
