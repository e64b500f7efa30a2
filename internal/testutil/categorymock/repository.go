package categorymock

import (
	"context"

	domain "compass-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

var _ domain.CategoryRepository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies catalog.CategoryRepository.
type Repo struct {
	FindByNameFn          func(ctx context.Context, name string) (*domain.Category, error)
	GetOrCreateFn         func(ctx context.Context, name string) (*domain.Category, error)
	NamesForApplicationFn func(ctx context.Context, applicationID uint64) ([]string, error)
}

func (m *Repo) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	if m.GetOrCreateFn != nil {
		return m.GetOrCreateFn(ctx, name)
	}
	return &domain.Category{Name: name}, nil
}

func (m *Repo) NamesForApplication(ctx context.Context, applicationID uint64) ([]string, error) {
	if m.NamesForApplicationFn != nil {
		return m.NamesForApplicationFn(ctx, applicationID)
	}
	return nil, nil
}
