package application

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("application not found")
	ErrInvalidStatus = errors.New("invalid application status")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus validates a caller-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// DefaultRejectReason is stored when an admin rejects without a reason.
const DefaultRejectReason = "Rejected by administrator."

// Application is a user's request to list a new tool. The snapshot fields
// are copied into the catalog on approval.
type Application struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	Name        string `gorm:"column:name;size:120;not null" json:"name"`
	SubTitle    string `gorm:"column:sub_title;size:200" json:"sub_title"`
	Origin      string `gorm:"column:origin;size:30" json:"origin"`
	URL         string `gorm:"column:url;size:300" json:"url"`
	Logo        string `gorm:"column:logo;size:300" json:"logo"`
	Description string `gorm:"column:description;type:text" json:"description"`

	AppliedAt    time.Time  `gorm:"column:applied_at;not null" json:"applied_at"`
	Status       Status     `gorm:"column:status;size:10;not null" json:"status"`
	RejectReason *string    `gorm:"column:reject_reason;type:text" json:"reject_reason"`
	ProcessedAt  *time.Time `gorm:"column:processed_at" json:"processed_at"`
	ProcessedBy  *uint64    `gorm:"column:processed_by" json:"processed_by"`
}

func (Application) TableName() string { return "ai_tool_application" }

// CategoryLink is the application↔category join row.
type CategoryLink struct {
	ApplicationID uint64 `gorm:"column:application_id;primaryKey"`
	CategoryID    uint64 `gorm:"column:category_id;primaryKey"`
}

func (CategoryLink) TableName() string { return "ai_tool_application_category" }
