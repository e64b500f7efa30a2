package uow

import (
	"context"

	"compass-backend/internal/domain/application"
	"compass-backend/internal/domain/catalog"
	"compass-backend/internal/domain/like"
	"compass-backend/internal/domain/user"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Users        user.Repository
	Categories   catalog.CategoryRepository
	Tools        catalog.ToolRepository
	Applications application.Repository
	Likes        like.Repository
}

// UnitOfWork runs fn inside a single database transaction; every service
// method maps to exactly one WithinTx call.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
