package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)

	// ListAll is the moderation queue: every application, newest first.
	ListAll(ctx context.Context) ([]Application, error)
	ListByUserID(ctx context.Context, userID uint64) ([]Application, error)

	LinkCategory(ctx context.Context, applicationID, categoryID uint64) error
	CategoryIDsFor(ctx context.Context, applicationID uint64) ([]uint64, error)
}
