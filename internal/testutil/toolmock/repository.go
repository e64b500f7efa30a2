package toolmock

import (
	"context"

	domain "compass-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

var _ domain.ToolRepository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies catalog.ToolRepository.
type Repo struct {
	CreateFn      func(ctx context.Context, t *domain.Tool) error
	SaveFn        func(ctx context.Context, t *domain.Tool) error
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.Tool, error)
	ExistsByIDFn  func(ctx context.Context, id uint64) (bool, error)
	FindByNameFn  func(ctx context.Context, name string) (*domain.Tool, error)
	FindByURLFn   func(ctx context.Context, url string) (*domain.Tool, error)
	ListFn        func(ctx context.Context, f domain.Filter) ([]domain.Tool, int64, error)
	ListByIDsFn   func(ctx context.Context, ids []uint64) ([]domain.Tool, error)
	AddCategoryFn func(ctx context.Context, toolID, categoryID uint64) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Tool) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Tool) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Tool, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}
	return false, nil
}

func (m *Repo) FindByName(ctx context.Context, name string) (*domain.Tool, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) FindByURL(ctx context.Context, url string) (*domain.Tool, error) {
	if m.FindByURLFn != nil {
		return m.FindByURLFn(ctx, url)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Tool, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) ListByIDs(ctx context.Context, ids []uint64) ([]domain.Tool, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *Repo) AddCategory(ctx context.Context, toolID, categoryID uint64) error {
	if m.AddCategoryFn != nil {
		return m.AddCategoryFn(ctx, toolID, categoryID)
	}
	return nil
}
