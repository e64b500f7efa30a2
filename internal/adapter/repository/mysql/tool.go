package mysql

import (
	"context"

	catalogDomain "compass-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type ToolRepository struct{ db *gorm.DB }

func NewToolRepository(db *gorm.DB) *ToolRepository { return &ToolRepository{db: db} }

func (r *ToolRepository) Create(ctx context.Context, t *catalogDomain.Tool) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ToolRepository) Save(ctx context.Context, t *catalogDomain.Tool) error {
	// Omit the association so Save never rewrites the category set; links
	// go through AddCategory only.
	return r.db.WithContext(ctx).Omit("Categories").Save(t).Error
}

func (r *ToolRepository) GetByID(ctx context.Context, id uint64) (*catalogDomain.Tool, error) {
	var out catalogDomain.Tool
	res := r.db.WithContext(ctx).Preload("Categories").First(&out, id)
	return &out, res.Error
}

func (r *ToolRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&catalogDomain.Tool{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *ToolRepository) FindByName(ctx context.Context, name string) (*catalogDomain.Tool, error) {
	var out catalogDomain.Tool
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

func (r *ToolRepository) FindByURL(ctx context.Context, url string) (*catalogDomain.Tool, error) {
	var out catalogDomain.Tool
	res := r.db.WithContext(ctx).Where("url = ?", url).First(&out)
	return &out, res.Error
}

// filtered builds the shared WHERE/JOIN chain for List and its count.
func (r *ToolRepository) filtered(ctx context.Context, f catalogDomain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&catalogDomain.Tool{})
	if f.Category != "" {
		q = q.Joins("JOIN ai_tool_category atc ON atc.tool_id = ai_tool.id").
			Joins("JOIN category c ON c.id = atc.category_id").
			Where("c.name = ?", f.Category)
	}
	if f.Origin != "" {
		q = q.Where("ai_tool.origin = ?", f.Origin)
	}
	if f.Query != "" {
		pat := "%" + f.Query + "%"
		q = q.Where("ai_tool.name LIKE ? OR ai_tool.sub_title LIKE ? OR ai_tool.description LIKE ?",
			pat, pat, pat)
	}
	return q
}

func (r *ToolRepository) List(ctx context.Context, f catalogDomain.Filter) ([]catalogDomain.Tool, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Distinct("ai_tool.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tools []catalogDomain.Tool
	err := r.filtered(ctx, f).
		Distinct("ai_tool.*").
		Preload("Categories").
		Order("ai_tool.updated_at DESC").
		Offset(f.Page * f.Size).
		Limit(f.Size).
		Find(&tools).Error
	return tools, total, err
}

func (r *ToolRepository) ListByIDs(ctx context.Context, ids []uint64) ([]catalogDomain.Tool, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tools []catalogDomain.Tool
	err := r.db.WithContext(ctx).Preload("Categories").Where("id IN ?", ids).Find(&tools).Error
	return tools, err
}

func (r *ToolRepository) AddCategory(ctx context.Context, toolID, categoryID uint64) error {
	// Association Append upserts the join row, so a duplicate add is a
	// no-op (set semantics).
	return r.db.WithContext(ctx).
		Model(&catalogDomain.Tool{ID: toolID}).
		Association("Categories").
		Append(&catalogDomain.Category{ID: categoryID})
}
