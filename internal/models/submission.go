package models

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is one student's response to one assignment. Uniqueness of the
// (assignment, student) pair is deliberately not enforced; resubmission goes
// through Update, but a second Create stores a second record.
type Submission struct {
	ID           uint                      `json:"id" gorm:"primaryKey"`
	AssignmentID uint                      `json:"assignmentId" gorm:"not null;index:idx_submissions_pair"`
	StudentID    uint                      `json:"studentId" gorm:"not null;index:idx_submissions_pair"`
	Body         string                    `json:"submission" gorm:"not null;type:text"`
	Score        *int                      `json:"score"`
	Reviews      datatypes.JSONSlice[uint] `json:"reviews"`
	IsFlagged    bool                      `json:"isFlagged" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
