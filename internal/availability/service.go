package availability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/logger"
)

// CatalogSource provides the live service catalog.
type CatalogSource interface {
	CatalogSnapshot(ctx context.Context) (Catalog, error)
}

// OverrideSource provides every day override keyed by ISO date.
type OverrideSource interface {
	DayOverrides(ctx context.Context) (map[string]DayOverride, error)
}

// ReservationSource provides confirmed reservations dated within [from, to].
type ReservationSource interface {
	ConfirmedReservations(ctx context.Context, from, to time.Time) ([]Reservation, error)
}

// Query carries the optional caller-local clock.
type Query struct {
	LocalDate    *string
	LocalMinutes *int
}

type Service interface {
	Availability(ctx context.Context, q Query) ([]DayAvailability, error)
}

// Options configures NewService. Zero values fall back to sensible defaults.
type Options struct {
	Location *time.Location
	Hours    Interval
	Now      func() time.Time
	Tracer   trace.Tracer
}

type service struct {
	catalog      CatalogSource
	overrides    OverrideSource
	reservations ReservationSource
	loc          *time.Location
	hours        Interval
	now          func() time.Time
	tracer       trace.Tracer
}

func NewService(catalog CatalogSource, overrides OverrideSource, reservations ReservationSource, opts Options) Service {
	s := &service{
		catalog:      catalog,
		overrides:    overrides,
		reservations: reservations,
		loc:          opts.Location,
		hours:        opts.Hours,
		now:          opts.Now,
		tracer:       opts.Tracer,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.hours.Empty() {
		s.hours = DefaultHours
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("github.com/abuelosolos/Fara/internal/availability")
	}
	return s
}

func (s *service) Availability(ctx context.Context, q Query) ([]DayAvailability, error) {
	ctx, span := s.tracer.Start(ctx, "availability.compute")
	defer span.End()
	log := logger.FromContext(ctx)

	local, err := ResolveLocalNow(q.LocalDate, q.LocalMinutes, s.now(), s.loc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if local.Mixed {
		log.Warn("availability requested with a partial local clock",
			zap.Bool("has_local_date", q.LocalDate != nil),
			zap.Bool("has_local_minutes", q.LocalMinutes != nil),
			zap.String("business_timezone", s.loc.String()),
		)
	}

	catalog, err := s.catalog.CatalogSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load service catalog: %w", err)
	}
	overrides, err := s.overrides.DayOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("load day overrides: %w", err)
	}
	last := local.Date.AddDate(0, 0, WindowDays-1)
	reservations, err := s.reservations.ConfirmedReservations(ctx, local.Date, last)
	if err != nil {
		return nil, fmt.Errorf("load confirmed reservations: %w", err)
	}

	span.SetAttributes(
		attribute.String("availability.local_date", local.Date.Format(DateLayout)),
		attribute.Int("availability.local_minutes", int(local.Minutes)),
		attribute.Int64("catalog.version", catalog.Version),
		attribute.Int("catalog.services", len(catalog.Durations)),
		attribute.Int("reservations.confirmed", len(reservations)),
	)

	days, err := Compute(Input{
		Today:        local.Date,
		Now:          local.Minutes,
		Catalog:      catalog,
		Overrides:    overrides,
		Reservations: reservations,
		Hours:        s.hours,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Warn("availability computation rejected", zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.Int("availability.days", len(days)))
	log.Debug("availability computed",
		zap.Int64("catalog_version", catalog.Version),
		zap.Int("days", len(days)),
	)
	return days, nil
}
