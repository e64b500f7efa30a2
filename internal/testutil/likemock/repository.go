package likemock

import (
	"context"

	domain "compass-backend/internal/domain/like"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies like.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, l *domain.Like) error
	DeleteFn        func(ctx context.Context, userID, toolID uint64) error
	ExistsFn        func(ctx context.Context, userID, toolID uint64) (bool, error)
	CountByToolIDFn func(ctx context.Context, toolID uint64) (int64, error)
	ListByUserIDFn  func(ctx context.Context, userID uint64) ([]domain.Like, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Like) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, userID, toolID uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, toolID)
	}
	return nil
}

func (m *Repo) Exists(ctx context.Context, userID, toolID uint64) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, userID, toolID)
	}
	return false, nil
}

func (m *Repo) CountByToolID(ctx context.Context, toolID uint64) (int64, error) {
	if m.CountByToolIDFn != nil {
		return m.CountByToolIDFn(ctx, toolID)
	}
	return 0, nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID uint64) ([]domain.Like, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, nil
}
