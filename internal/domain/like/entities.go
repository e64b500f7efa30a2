package like

import "time"

// Like is a (user, tool) join row. Existence implies "liked"; the row
// count per tool is the like count.
type Like struct {
	UserID    uint64    `gorm:"column:user_id;primaryKey"`
	ToolID    uint64    `gorm:"column:tool_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Like) TableName() string { return "ai_tool_like" }
