package models

import (
	"time"

	"gorm.io/datatypes"
)

type Workspace struct {
	ID         uint                      `json:"id" gorm:"primaryKey"`
	Name       string                    `json:"name" gorm:"uniqueIndex;not null;size:200"`
	EducatorID uint                      `json:"educatorId" gorm:"not null;index"`
	Students   datatypes.JSONSlice[uint] `json:"students"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

// HasStudent reports whether the student is already enrolled.
func (w *Workspace) HasStudent(studentID uint) bool {
	for _, id := range w.Students {
		if id == studentID {
			return true
		}
	}
	return false
}
