package validator

import "time"

// Request DTOs for every write operation. JSON field names follow the wire
// format the frontend already speaks.

type SignupRequest struct {
	FirstName string   `json:"f_name" validate:"required,max=100"`
	LastName  string   `json:"l_name" validate:"required,max=100"`
	Email     string   `json:"email" validate:"required,email,max=255"`
	Password  string   `json:"password" validate:"required,min=8,max=128"`
	Majors    []string `json:"major" validate:"omitempty,dive,max=100"`
	Role      string   `json:"role" validate:"required,lowercase"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type WorkspaceCreateRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	EducatorID uint   `json:"educatorId" validate:"required"`
	Students   []uint `json:"students"`
}

type EnrollStudentRequest struct {
	StudentID uint `json:"student" validate:"required"`
}

type AssignmentCreateRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"required"`
	WorkspaceID uint       `json:"workspaceId" validate:"required"`
	DueDate     time.Time  `json:"dueDate" validate:"required"`
	MaxScore    *int       `json:"maxScore" validate:"omitempty,min=0,max=1000"`
}

type AssignmentUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    *int       `json:"maxScore" validate:"omitempty,min=0,max=1000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft published closed"`
}

type SubmissionCreateRequest struct {
	AssignmentID uint   `json:"assignmentId" validate:"required"`
	StudentID    uint   `json:"studentId" validate:"required"`
	Body         string `json:"submission" validate:"required"`
}

type SubmissionUpdateRequest struct {
	Body  *string `json:"submission"`
	Score *int    `json:"score" validate:"omitempty,min=0,max=1000"`
}

type ReviewCreateRequest struct {
	SubmissionID uint   `json:"submissionId" validate:"required"`
	ReviewerID   uint   `json:"reviewerId" validate:"required"`
	Body         string `json:"review" validate:"required"`
}

type ChatRequest struct {
	StudentID uint   `json:"studentId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ModerationRulesRequest struct {
	Rules []string `json:"moderation_rules" validate:"required,min=1,dive,required"`
}
