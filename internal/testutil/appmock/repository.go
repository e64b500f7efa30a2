package appmock

import (
	"context"

	domain "compass-backend/internal/domain/application"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, a *domain.Application) error
	SaveFn           func(ctx context.Context, a *domain.Application) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Application, error)
	ListAllFn        func(ctx context.Context) ([]domain.Application, error)
	ListByUserIDFn   func(ctx context.Context, userID uint64) ([]domain.Application, error)
	LinkCategoryFn   func(ctx context.Context, applicationID, categoryID uint64) error
	CategoryIDsForFn func(ctx context.Context, applicationID uint64) ([]uint64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID uint64) ([]domain.Application, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) LinkCategory(ctx context.Context, applicationID, categoryID uint64) error {
	if m.LinkCategoryFn != nil {
		return m.LinkCategoryFn(ctx, applicationID, categoryID)
	}
	return nil
}

func (m *Repo) CategoryIDsFor(ctx context.Context, applicationID uint64) ([]uint64, error) {
	if m.CategoryIDsForFn != nil {
		return m.CategoryIDsForFn(ctx, applicationID)
	}
	return nil, nil
}
