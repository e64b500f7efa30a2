package like

import "context"

type Repository interface {
	// Create may race with a concurrent like of the same pair; the caller
	// treats a duplicate-key error as "already liked".
	Create(ctx context.Context, l *Like) error
	Delete(ctx context.Context, userID, toolID uint64) error
	Exists(ctx context.Context, userID, toolID uint64) (bool, error)
	CountByToolID(ctx context.Context, toolID uint64) (int64, error)

	// ListByUserID returns the user's likes, most recent first.
	ListByUserID(ctx context.Context, userID uint64) ([]Like, error)
}
