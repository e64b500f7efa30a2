package mysql

import (
	"context"
	"errors"

	catalogDomain "compass-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*catalogDomain.Category, error) {
	var out catalogDomain.Category
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*catalogDomain.Category, error) {
	c, err := r.FindByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := catalogDomain.Category{Name: name}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		// Lost the insert race: the unique index on name is the final
		// arbiter, so re-fetch the winner's row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByName(ctx, name)
		}
		return nil, err
	}
	return &created, nil
}

func (r *CategoryRepository) NamesForApplication(ctx context.Context, applicationID uint64) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Table("category").
		Select("category.name").
		Joins("JOIN ai_tool_application_category l ON l.category_id = category.id").
		Where("l.application_id = ?", applicationID).
		Order("category.id").
		Scan(&names).Error
	return names, err
}
