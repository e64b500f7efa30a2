package tool

import (
	"context"
	"errors"
	"sort"
	"time"

	"compass-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Usecase struct{ tools catalog.ToolRepository }

func NewUsecase(tools catalog.ToolRepository) *Usecase { return &Usecase{tools: tools} }

type ListInput struct {
	Category string
	Origin   string
	Query    string
	Page     int
	Size     int
}

type ToolDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	SubTitle    string    `json:"sub_title"`
	Origin      string    `json:"origin"`
	URL         string    `json:"url"`
	Logo        string    `json:"logo"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Categories  []string  `json:"categories"`
}

type PageDTO struct {
	Items []ToolDTO `json:"items"`
	Page  int       `json:"page"`
	Size  int       `json:"size"`
	Total int64     `json:"total"`
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*PageDTO, error) {
	if in.Page < 0 {
		in.Page = 0
	}
	if in.Size <= 0 {
		in.Size = defaultPageSize
	}
	if in.Size > maxPageSize {
		in.Size = maxPageSize
	}

	tools, total, err := u.tools.List(ctx, catalog.Filter{
		Category: in.Category,
		Origin:   in.Origin,
		Query:    in.Query,
		Page:     in.Page,
		Size:     in.Size,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ToolDTO, 0, len(tools))
	for i := range tools {
		items = append(items, ToDTO(&tools[i]))
	}
	return &PageDTO{Items: items, Page: in.Page, Size: in.Size, Total: total}, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ToolDTO, error) {
	t, err := u.tools.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	dto := ToDTO(t)
	return &dto, nil
}

func ToDTO(t *catalog.Tool) ToolDTO {
	names := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return ToolDTO{
		ID:          t.ID,
		Name:        t.Name,
		SubTitle:    t.SubTitle,
		Origin:      t.Origin,
		URL:         t.URL,
		Logo:        t.Logo,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Categories:  names,
	}
}
