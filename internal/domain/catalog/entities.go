package catalog

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("tool not found")

type Category struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;size:60;not null;uniqueIndex:uq_category_name" json:"name"`
}

func (Category) TableName() string { return "category" }

// Tool is a published catalog row. Rows are created either by a direct
// edit or by promoting an approved application.
type Tool struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"column:name;size:120;not null;uniqueIndex:uq_ai_tool_name" json:"name"`
	SubTitle    string     `gorm:"column:sub_title;size:200" json:"sub_title"`
	Origin      string     `gorm:"column:origin;size:30" json:"origin"`
	URL         string     `gorm:"column:url;size:300;uniqueIndex:uq_ai_tool_url" json:"url"`
	Logo        string     `gorm:"column:logo;size:300" json:"logo"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Categories  []Category `gorm:"many2many:ai_tool_category;joinForeignKey:tool_id;joinReferences:category_id" json:"categories"`
}

func (Tool) TableName() string { return "ai_tool" }
