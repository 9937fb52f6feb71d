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

type reviewService struct {
	repo      repositories.Repository
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewReviewService(
	repo repositories.Repository,
	publisher events.Publisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ReviewService {
	return &reviewService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *reviewService) Create(ctx context.Context, req *ReviewCreateRequest) (*models.Review, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	submission, err := s.repo.Submission().GetByID(ctx, req.SubmissionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	review := &models.Review{
		SubmissionID: req.SubmissionID,
		ReviewerID:   req.ReviewerID,
		Body:         req.Body,
	}

	if err := s.repo.Review().Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Keep the submission's review reference list in sync.
	submission.Reviews = append(submission.Reviews, review.ID)
	if err := s.repo.Submission().Update(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to link review to submission: %w", err)
	}

	s.logger.Info("review created", "review_id", review.ID, "submission_id", review.SubmissionID)

	_ = s.publisher.Publish(ctx, events.Event{
		Type: events.SubmissionReviewed,
		Payload: map[string]interface{}{
			"review_id":     review.ID,
			"submission_id": review.SubmissionID,
		},
	})

	return review, nil
}

func (s *reviewService) ListBySubmission(ctx context.Context, submissionID uint) ([]*models.Review, error) {
	return s.repo.Review().ListBySubmission(ctx, submissionID)
}

func (s *reviewService) Vote(ctx context.Context, reviewID uint, up bool) (*models.Review, error) {
	review, err := s.repo.Review().GetByID(ctx, reviewID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if up {
		review.Upvotes++
	} else {
		review.Downvotes++
	}

	if err := s.repo.Review().Update(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return review, nil
}
