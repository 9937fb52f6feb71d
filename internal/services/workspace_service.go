package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/edustack/classroom-service/internal/events"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/validator"
)

type workspaceService struct {
	repo      repositories.Repository
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewWorkspaceService(
	repo repositories.Repository,
	publisher events.Publisher,
	logger *slog.Logger,
	validator *validator.Validator,
) WorkspaceService {
	return &workspaceService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *workspaceService) Create(ctx context.Context, req *WorkspaceCreateRequest) (*models.Workspace, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.repo.Workspace().ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateWorkspace
	}

	// Any students passed at creation go through the same role check as
	// enrollment.
	for _, studentID := range req.Students {
		if err := s.requireStudent(ctx, studentID); err != nil {
			return nil, err
		}
	}

	workspace := &models.Workspace{
		Name:       req.Name,
		EducatorID: req.EducatorID,
		Students:   datatypes.NewJSONSlice(req.Students),
	}

	if err := s.repo.Workspace().Create(ctx, workspace); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrDuplicateWorkspace
		}
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.logger.Info("workspace created", "workspace_id", workspace.ID, "name", workspace.Name)
	return workspace, nil
}

func (s *workspaceService) List(ctx context.Context) ([]*models.Workspace, error) {
	return s.repo.Workspace().List(ctx)
}

func (s *workspaceService) ListByEducator(ctx context.Context, educatorID uint) ([]*models.Workspace, error) {
	return s.repo.Workspace().ListByEducator(ctx, educatorID)
}

func (s *workspaceService) ListByStudent(ctx context.Context, studentID uint) ([]*models.Workspace, error) {
	return s.repo.Workspace().ListByStudent(ctx, studentID)
}

// EnrollStudent adds a student to the workspace roster. Enrolling an
// already-enrolled student is a no-op that still succeeds, so the student
// list never holds duplicates.
func (s *workspaceService) EnrollStudent(ctx context.Context, workspaceID, studentID uint) (*models.Workspace, error) {
	workspace, err := s.repo.Workspace().GetByID(ctx, workspaceID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}

	if workspace.HasStudent(studentID) {
		return workspace, nil
	}

	workspace.Students = append(workspace.Students, studentID)
	if err := s.repo.Workspace().Update(ctx, workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.logger.Info("student enrolled", "workspace_id", workspaceID, "student_id", studentID)

	_ = s.publisher.Publish(ctx, events.Event{
		Type: events.StudentEnrolled,
		Payload: map[string]interface{}{
			"workspace_id": workspaceID,
			"student_id":   studentID,
		},
	})

	return workspace, nil
}

func (s *workspaceService) requireStudent(ctx context.Context, accountID uint) error {
	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrNotAStudent
		}
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account.Role != models.RoleStudent {
		return ErrNotAStudent
	}
	return nil
}
