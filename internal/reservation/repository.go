package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abuelosolos/Fara/internal/availability"
)

// GuardFunc decides inside the status-change transaction whether target may
// move on. confirmed holds the other confirmed reservations on target's date.
type GuardFunc func(target *Reservation, confirmed []*Reservation) error

type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)

	// ListConfirmed returns confirmed reservations dated within [from, to].
	ListConfirmed(ctx context.Context, from, to time.Time) ([]*Reservation, error)

	// UpdateStatus changes the status of id while holding a per-date lock, so
	// two confirmations on the same day are serialized. guard may veto.
	UpdateStatus(ctx context.Context, id string, next Status, guard GuardFunc) (*Reservation, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const table = "public.reservations"

var selectColumns = []string{
	"id", "date", "start_time", "service", "duration",
	"customer_name", "customer_email", "customer_phone", "notes",
	"status", "created_at", "updated_at",
}

func scanTargets(r *Reservation) []any {
	return []any{
		&r.ID, &r.Date, &r.StartTime, &r.Service, &r.Duration,
		&r.CustomerName, &r.CustomerEmail, &r.CustomerPhone, &r.Notes,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (p *pgxRepository) Create(ctx context.Context, r *Reservation) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert(table).
		Columns("id", "date", "start_time", "service", "duration",
			"customer_name", "customer_email", "customer_phone", "notes", "status").
		Values(r.ID, r.Date, r.StartTime, r.Service, r.Duration,
			r.CustomerName, r.CustomerEmail, r.CustomerPhone, r.Notes, r.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := p.pool.QueryRow(ctx, query, args...).Scan(&r.CreatedAt, &r.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

func (p *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	var r Reservation
	if err := p.pool.QueryRow(ctx, query, args...).Scan(scanTargets(&r)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &r, nil
}

func (p *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(selectColumns, "count(*) OVER() AS total_count")...).
		From(table)

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Service != "" {
		query = query.Where(squirrel.Eq{"service": filter.Service})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("date DESC", "created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var (
		out   []*Reservation
		total int
	)
	for rows.Next() {
		var r Reservation
		if err := rows.Scan(append(scanTargets(&r), &total)...); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		out = append(out, &r)
	}
	return out, total, rows.Err()
}

func (p *pgxRepository) ListConfirmed(ctx context.Context, from, to time.Time) ([]*Reservation, error) {
	return listConfirmed(ctx, p.pool, squirrel.And{
		squirrel.GtOrEq{"date": from},
		squirrel.LtOrEq{"date": to},
	})
}

func (p *pgxRepository) UpdateStatus(ctx context.Context, id string, next Status, guard GuardFunc) (*Reservation, error) {
	var updated *Reservation

	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		query, args, err := psql.Select(selectColumns...).
			From(table).
			Where(squirrel.Eq{"id": id}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("build lock reservation query failed: %w", err)
		}

		var target Reservation
		if err := tx.QueryRow(ctx, query, args...).Scan(scanTargets(&target)...); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("lock reservation failed: %w", err)
		}

		day := target.Date.Format(availability.DateLayout)
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", "reservations:"+day); err != nil {
			return fmt.Errorf("lock reservation date failed: %w", err)
		}

		confirmed, err := listConfirmed(ctx, tx, squirrel.And{
			squirrel.Eq{"date": target.Date},
			squirrel.NotEq{"id": target.ID},
		})
		if err != nil {
			return err
		}

		if guard != nil {
			if err := guard(&target, confirmed); err != nil {
				return err
			}
		}

		update, uargs, err := psql.Update(table).
			Set("status", next).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": target.ID}).
			Suffix("RETURNING updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build update reservation query failed: %w", err)
		}
		if err := tx.QueryRow(ctx, update, uargs...).Scan(&target.UpdatedAt); err != nil {
			return fmt.Errorf("update reservation failed: %w", err)
		}

		target.Status = next
		updated = &target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func listConfirmed(ctx context.Context, q querier, where squirrel.Sqlizer) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"status": StatusConfirmed}).
		Where(where).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list confirmed reservations query failed: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list confirmed reservations failed: %w", err)
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		var r Reservation
		if err := rows.Scan(scanTargets(&r)...); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}
