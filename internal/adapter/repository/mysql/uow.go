package mysql

import (
	"context"

	"compass-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

// bindRepos wires every repository to the same *gorm.DB (a live tx inside
// WithinTx, the root handle elsewhere).
func bindRepos(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:        &UserRepository{db: db},
		Categories:   &CategoryRepository{db: db},
		Tools:        &ToolRepository{db: db},
		Applications: &ApplicationRepository{db: db},
		Likes:        &LikeRepository{db: db},
	}
}
