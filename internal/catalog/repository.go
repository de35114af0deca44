package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abuelosolos/Fara/internal/availability"
)

// Repository stores the service catalog. Every write bumps the catalog
// version in the same transaction.
type Repository interface {
	List(ctx context.Context) ([]*Item, error)
	GetByName(ctx context.Context, name string) (*Item, error)
	Create(ctx context.Context, item *Item) error
	UpdateDuration(ctx context.Context, name string, minutes int) (*Item, error)
	Delete(ctx context.Context, name string) error
	Snapshot(ctx context.Context) (availability.Catalog, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	itemsTable   = "public.service_catalog"
	versionTable = "public.service_catalog_version"
)

func (r *pgxRepository) List(ctx context.Context) ([]*Item, error) {
	query, args, err := psql.Select("name", "duration_minutes", "created_at", "updated_at").
		From(itemsTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list services query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Name, &it.DurationMinutes, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service failed: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *pgxRepository) GetByName(ctx context.Context, name string) (*Item, error) {
	query, args, err := psql.Select("name", "duration_minutes", "created_at", "updated_at").
		From(itemsTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get service query failed: %w", err)
	}

	var it Item
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&it.Name, &it.DurationMinutes, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &it, nil
}

func (r *pgxRepository) Create(ctx context.Context, item *Item) error {
	query, args, err := psql.Insert(itemsTable).
		Columns("name", "duration_minutes").
		Values(item.Name, item.DurationMinutes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create service query failed: %w", err)
	}

	return r.write(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query, args...).Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return ErrAlreadyExists
			}
			return fmt.Errorf("create service failed: %w", err)
		}
		return nil
	})
}

func (r *pgxRepository) UpdateDuration(ctx context.Context, name string, minutes int) (*Item, error) {
	query, args, err := psql.Update(itemsTable).
		Set("duration_minutes", minutes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"name": name}).
		Suffix("RETURNING name, duration_minutes, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update service query failed: %w", err)
	}

	var it Item
	err = r.write(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query, args...).
			Scan(&it.Name, &it.DurationMinutes, &it.CreatedAt, &it.UpdatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("update service failed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *pgxRepository) Delete(ctx context.Context, name string) error {
	query, args, err := psql.Delete(itemsTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete service query failed: %w", err)
	}

	return r.write(ctx, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("delete service failed: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Snapshot reads the version and every duration from one repeatable-read
// transaction so the pair is consistent.
func (r *pgxRepository) Snapshot(ctx context.Context) (availability.Catalog, error) {
	cat := availability.Catalog{Durations: make(map[string]int)}

	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgx.BeginTxFunc(ctx, r.pool, opts, func(tx pgx.Tx) error {
		vq, vargs, err := psql.Select("version").From(versionTable).ToSql()
		if err != nil {
			return fmt.Errorf("build catalog version query failed: %w", err)
		}
		if err := tx.QueryRow(ctx, vq, vargs...).Scan(&cat.Version); err != nil {
			return fmt.Errorf("read catalog version failed: %w", err)
		}

		q, args, err := psql.Select("name", "duration_minutes").From(itemsTable).ToSql()
		if err != nil {
			return fmt.Errorf("build catalog snapshot query failed: %w", err)
		}
		rows, err := tx.Query(ctx, q, args...)
		if err != nil {
			return fmt.Errorf("read catalog failed: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				name    string
				minutes int
			)
			if err := rows.Scan(&name, &minutes); err != nil {
				return fmt.Errorf("scan catalog entry failed: %w", err)
			}
			cat.Durations[name] = minutes
		}
		return rows.Err()
	})
	if err != nil {
		return availability.Catalog{}, err
	}
	return cat, nil
}

func (r *pgxRepository) write(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		q, args, err := psql.Update(versionTable).
			Set("version", squirrel.Expr("version + 1")).
			ToSql()
		if err != nil {
			return fmt.Errorf("build bump catalog version query failed: %w", err)
		}
		if _, err := tx.Exec(ctx, q, args...); err != nil {
			return fmt.Errorf("bump catalog version failed: %w", err)
		}
		return nil
	})
}
