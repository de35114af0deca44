package override

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abuelosolos/Fara/internal/availability"
)

type Repository interface {
	// List returns overrides dated on or after from, or all of them when from is nil.
	List(ctx context.Context, from *time.Time) ([]*Override, error)
	Get(ctx context.Context, date time.Time) (*Override, error)
	Upsert(ctx context.Context, o *Override) error
	Delete(ctx context.Context, date time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const table = "public.day_overrides"

var columns = []string{"date", "blocked", "hours", "updated_at"}

func (r *pgxRepository) List(ctx context.Context, from *time.Time) ([]*Override, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(columns...).From(table).OrderBy("date ASC")
	if from != nil {
		query = query.Where(squirrel.GtOrEq{"date": *from})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list overrides query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list overrides failed: %w", err)
	}
	defer rows.Close()

	var out []*Override
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *pgxRepository) Get(ctx context.Context, date time.Time) (*Override, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get override query failed: %w", err)
	}

	o, err := scanOverride(r.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *pgxRepository) Upsert(ctx context.Context, o *Override) error {
	hours := make([]string, len(o.Hours))
	for i, h := range o.Hours {
		hours[i] = h.String()
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Insert(table).
		Columns("date", "blocked", "hours").
		Values(o.Date, o.Blocked, hours).
		Suffix(`ON CONFLICT (date) DO UPDATE
			SET blocked = EXCLUDED.blocked, hours = EXCLUDED.hours, updated_at = now()
			RETURNING updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert override query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&o.UpdatedAt); err != nil {
		return fmt.Errorf("upsert override failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, date time.Time) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete override query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete override failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanOverride reads one row. Stored hours are parsed strictly; a malformed
// value fails the read instead of being skipped.
func scanOverride(row pgx.Row) (*Override, error) {
	var (
		o     Override
		hours []string
	)
	if err := row.Scan(&o.Date, &o.Blocked, &hours, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan override failed: %w", err)
	}

	o.Hours = make([]availability.TimeOfDay, 0, len(hours))
	for _, h := range hours {
		t, err := availability.ParseTimeOfDay(h)
		if err != nil {
			return nil, fmt.Errorf("override %s: %w", o.Date.Format(availability.DateLayout), err)
		}
		o.Hours = append(o.Hours, t)
	}
	return &o, nil
}
