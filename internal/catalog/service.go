package catalog

import (
	"context"
	"strings"

	"github.com/abuelosolos/Fara/internal/availability"
)

type Service interface {
	List(ctx context.Context) ([]*Item, error)
	Get(ctx context.Context, name string) (*Item, error)
	Create(ctx context.Context, name string, minutes int) (*Item, error)
	UpdateDuration(ctx context.Context, name string, minutes int) (*Item, error)
	Delete(ctx context.Context, name string) error

	// CatalogSnapshot reads the live catalog; there is no caching layer.
	CatalogSnapshot(ctx context.Context) (availability.Catalog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validate(name string, minutes int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if minutes < 1 || minutes > MaxDuration {
		return "", ErrInvalidDuration
	}
	return name, nil
}

func (s *service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, name string) (*Item, error) {
	return s.repo.GetByName(ctx, strings.TrimSpace(name))
}

func (s *service) Create(ctx context.Context, name string, minutes int) (*Item, error) {
	name, err := validate(name, minutes)
	if err != nil {
		return nil, err
	}

	item := &Item{Name: name, DurationMinutes: minutes}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) UpdateDuration(ctx context.Context, name string, minutes int) (*Item, error) {
	name, err := validate(name, minutes)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateDuration(ctx, name, minutes)
}

func (s *service) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, strings.TrimSpace(name))
}

func (s *service) CatalogSnapshot(ctx context.Context) (availability.Catalog, error) {
	return s.repo.Snapshot(ctx)
}
