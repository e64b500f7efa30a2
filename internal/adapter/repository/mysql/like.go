package mysql

import (
	"context"

	likeDomain "compass-backend/internal/domain/like"

	"gorm.io/gorm"
)

type LikeRepository struct{ db *gorm.DB }

func NewLikeRepository(db *gorm.DB) *LikeRepository { return &LikeRepository{db: db} }

func (r *LikeRepository) Create(ctx context.Context, l *likeDomain.Like) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LikeRepository) Delete(ctx context.Context, userID, toolID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Delete(&likeDomain.Like{}).Error
}

func (r *LikeRepository) Exists(ctx context.Context, userID, toolID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&likeDomain.Like{}).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Count(&n).Error
	return n > 0, err
}

func (r *LikeRepository) CountByToolID(ctx context.Context, toolID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&likeDomain.Like{}).
		Where("tool_id = ?", toolID).
		Count(&n).Error
	return n, err
}

func (r *LikeRepository) ListByUserID(ctx context.Context, userID uint64) ([]likeDomain.Like, error) {
	var out []likeDomain.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, tool_id DESC").
		Find(&out).Error
	return out, err
}
