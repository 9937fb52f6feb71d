package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/validator"
)

type assignmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAssignmentService(
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
) AssignmentService {
	return &assignmentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

func (s *assignmentService) Create(ctx context.Context, req *AssignmentCreateRequest, educatorID uint) (*models.Assignment, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Workspace().GetByID(ctx, req.WorkspaceID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		WorkspaceID: req.WorkspaceID,
		EducatorID:  educatorID,
		DueDate:     req.DueDate,
		MaxScore:    100,
		Status:      models.AssignmentDraft,
	}
	if req.MaxScore != nil {
		assignment.MaxScore = *req.MaxScore
	}

	if err := s.repo.Assignment().Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info("assignment created", "assignment_id", assignment.ID, "workspace_id", assignment.WorkspaceID)
	return assignment, nil
}

func (s *assignmentService) List(ctx context.Context) ([]*models.Assignment, error) {
	return s.repo.Assignment().List(ctx)
}

func (s *assignmentService) ListByWorkspace(ctx context.Context, workspaceID uint) ([]*models.Assignment, error) {
	return s.repo.Assignment().ListByWorkspace(ctx, workspaceID)
}

func (s *assignmentService) Update(ctx context.Context, id uint, req *AssignmentUpdateRequest) (*models.Assignment, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	assignment, err := s.repo.Assignment().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = *req.Description
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}
	if req.MaxScore != nil {
		assignment.MaxScore = *req.MaxScore
	}
	if req.Status != nil {
		assignment.Status = models.AssignmentStatus(*req.Status)
	}

	if err := s.repo.Assignment().Update(ctx, assignment); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return assignment, nil
}

func (s *assignmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Assignment().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	s.logger.Info("assignment deleted", "assignment_id", id)
	return nil
}
