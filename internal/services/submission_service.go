package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edustack/classroom-service/internal/events"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/validator"
)

type submissionService struct {
	repo      repositories.Repository
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSubmissionService(
	repo repositories.Repository,
	publisher events.Publisher,
	logger *slog.Logger,
	validator *validator.Validator,
) SubmissionService {
	return &submissionService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Create stores a submission. A second create for the same (assignment,
// student) pair stores a second record; resubmission is expected to go
// through Update instead.
func (s *submissionService) Create(ctx context.Context, req *SubmissionCreateRequest) (*models.Submission, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Assignment().GetByID(ctx, req.AssignmentID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	submission := &models.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		Body:         req.Body,
	}

	if err := s.repo.Submission().Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	s.logger.Info("submission created",
		"submission_id", submission.ID,
		"assignment_id", submission.AssignmentID,
		"student_id", submission.StudentID,
	)

	_ = s.publisher.Publish(ctx, events.Event{
		Type: events.SubmissionCreated,
		Payload: map[string]interface{}{
			"submission_id": submission.ID,
			"assignment_id": submission.AssignmentID,
			"student_id":    submission.StudentID,
		},
	})

	return submission, nil
}

func (s *submissionService) List(ctx context.Context) ([]*models.Submission, error) {
	return s.repo.Submission().List(ctx)
}

func (s *submissionService) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID uint) ([]*models.Submission, error) {
	return s.repo.Submission().ListByAssignmentAndStudent(ctx, assignmentID, studentID)
}

func (s *submissionService) Update(ctx context.Context, id uint, req *SubmissionUpdateRequest) (*models.Submission, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	submission, err := s.repo.Submission().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	if req.Body != nil {
		submission.Body = *req.Body
	}
	if req.Score != nil {
		submission.Score = req.Score
	}

	if err := s.repo.Submission().Update(ctx, submission); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	return submission, nil
}
