package models

import "time"

type AssignmentStatus string

const (
	AssignmentDraft     AssignmentStatus = "draft"
	AssignmentPublished AssignmentStatus = "published"
	AssignmentClosed    AssignmentStatus = "closed"
)

type Assignment struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Title       string           `json:"title" gorm:"not null;size:200;index"`
	Description string           `json:"description" gorm:"not null;type:text"`
	WorkspaceID uint             `json:"workspaceId" gorm:"not null;index"`
	EducatorID  uint             `json:"educatorId" gorm:"not null;index"`
	DueDate     time.Time        `json:"dueDate" gorm:"not null"`
	MaxScore    int              `json:"maxScore" gorm:"default:100"`
	Status      AssignmentStatus `json:"status" gorm:"default:draft;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Assignment) TableName() string {
	return "assignments"
}
