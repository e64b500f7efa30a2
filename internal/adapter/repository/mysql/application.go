package mysql

import (
	"context"

	appDomain "compass-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).Order("applied_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListByUserID(ctx context.Context, userID uint64) ([]appDomain.Application, error) {
	var out []appDomain.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) LinkCategory(ctx context.Context, applicationID, categoryID uint64) error {
	return r.db.WithContext(ctx).Create(&appDomain.CategoryLink{
		ApplicationID: applicationID,
		CategoryID:    categoryID,
	}).Error
}

func (r *ApplicationRepository) CategoryIDsFor(ctx context.Context, applicationID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&appDomain.CategoryLink{}).
		Where("application_id = ?", applicationID).
		Order("category_id").
		Pluck("category_id", &ids).Error
	return ids, err
}
