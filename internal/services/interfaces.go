package services

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/validator"
)

// ===== REQUEST DTOs (shared with the validator package) =====

type SignupRequest = validator.SignupRequest
type LoginRequest = validator.LoginRequest
type WorkspaceCreateRequest = validator.WorkspaceCreateRequest
type EnrollStudentRequest = validator.EnrollStudentRequest
type AssignmentCreateRequest = validator.AssignmentCreateRequest
type AssignmentUpdateRequest = validator.AssignmentUpdateRequest
type SubmissionCreateRequest = validator.SubmissionCreateRequest
type SubmissionUpdateRequest = validator.SubmissionUpdateRequest
type ReviewCreateRequest = validator.ReviewCreateRequest
type ChatRequest = validator.ChatRequest
type ModerationRulesRequest = validator.ModerationRulesRequest

// LoginResponse carries the signed session credential.
type LoginResponse struct {
	Token string `json:"token"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*models.Account, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Profile(ctx context.Context, accountID uint) (*models.Account, error)
	ListStudents(ctx context.Context) ([]*models.Account, error)
}

type WorkspaceService interface {
	Create(ctx context.Context, req *WorkspaceCreateRequest) (*models.Workspace, error)
	List(ctx context.Context) ([]*models.Workspace, error)
	ListByEducator(ctx context.Context, educatorID uint) ([]*models.Workspace, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Workspace, error)
	EnrollStudent(ctx context.Context, workspaceID, studentID uint) (*models.Workspace, error)
}

type AssignmentService interface {
	Create(ctx context.Context, req *AssignmentCreateRequest, educatorID uint) (*models.Assignment, error)
	List(ctx context.Context) ([]*models.Assignment, error)
	ListByWorkspace(ctx context.Context, workspaceID uint) ([]*models.Assignment, error)
	Update(ctx context.Context, id uint, req *AssignmentUpdateRequest) (*models.Assignment, error)
	Delete(ctx context.Context, id uint) error
}

type SubmissionService interface {
	Create(ctx context.Context, req *SubmissionCreateRequest) (*models.Submission, error)
	List(ctx context.Context) ([]*models.Submission, error)
	GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID uint) ([]*models.Submission, error)
	Update(ctx context.Context, id uint, req *SubmissionUpdateRequest) (*models.Submission, error)
}

type ReviewService interface {
	Create(ctx context.Context, req *ReviewCreateRequest) (*models.Review, error)
	ListBySubmission(ctx context.Context, submissionID uint) ([]*models.Review, error)
	Vote(ctx context.Context, reviewID uint, up bool) (*models.Review, error)
}

type ChatService interface {
	CreateChat(ctx context.Context, req *ChatRequest) (*models.ChatMessage, error)
	ListChats(ctx context.Context) ([]*models.ChatMessage, error)
	ListChatsByStudent(ctx context.Context, studentID uint) ([]*models.ChatMessage, error)
}

type ModerationService interface {
	ActiveRules(ctx context.Context) (*models.ModerationRuleSet, error)
	ReplaceRules(ctx context.Context, req *ModerationRulesRequest) (*models.ModerationRuleSet, error)
	FlagSubmission(ctx context.Context, submissionID uint) error
}

type ExportService interface {
	WorkspaceGradebook(ctx context.Context, workspaceID uint) (*excelize.File, error)
}
