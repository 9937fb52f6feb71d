package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/validator"
)

type moderationService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewModerationService(
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
) ModerationService {
	return &moderationService{
		repo:      repo,
		logger:    logger,
		validator: validator,
	}
}

// ActiveRules returns the stored rule set. When none has been saved yet
// the built-in defaults are returned without persisting them.
func (s *moderationService) ActiveRules(ctx context.Context) (*models.ModerationRuleSet, error) {
	ruleSet, err := s.repo.Moderation().GetActive(ctx)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return &models.ModerationRuleSet{
				Rules: datatypes.NewJSONSlice(models.DefaultModerationRules()),
			}, nil
		}
		return nil, fmt.Errorf("failed to get moderation rules: %w", err)
	}
	return ruleSet, nil
}

// ReplaceRules swaps the whole rule list. The flagged-submission list
// carries over from the previous set.
func (s *moderationService) ReplaceRules(ctx context.Context, req *ModerationRulesRequest) (*models.ModerationRuleSet, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	ruleSet, err := s.repo.Moderation().GetActive(ctx)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to get moderation rules: %w", err)
		}
		ruleSet = &models.ModerationRuleSet{}
	}

	ruleSet.Rules = datatypes.NewJSONSlice(req.Rules)
	if err := s.repo.Moderation().Save(ctx, ruleSet); err != nil {
		return nil, fmt.Errorf("failed to save moderation rules: %w", err)
	}

	s.logger.Info("moderation rules replaced", "rule_count", len(req.Rules))
	return ruleSet, nil
}

// FlagSubmission marks a submission as flagged and records it on the
// active rule set.
func (s *moderationService) FlagSubmission(ctx context.Context, submissionID uint) error {
	submission, err := s.repo.Submission().GetByID(ctx, submissionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrSubmissionNotFound
		}
		return fmt.Errorf("failed to get submission: %w", err)
	}

	if !submission.IsFlagged {
		submission.IsFlagged = true
		if err := s.repo.Submission().Update(ctx, submission); err != nil {
			return fmt.Errorf("failed to flag submission: %w", err)
		}
	}

	ruleSet, err := s.repo.Moderation().GetActive(ctx)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			return fmt.Errorf("failed to get moderation rules: %w", err)
		}
		ruleSet = &models.ModerationRuleSet{
			Rules: datatypes.NewJSONSlice(models.DefaultModerationRules()),
		}
	}

	for _, id := range ruleSet.FlaggedSubmissions {
		if id == submissionID {
			return nil
		}
	}
	ruleSet.FlaggedSubmissions = append(ruleSet.FlaggedSubmissions, submissionID)
	if err := s.repo.Moderation().Save(ctx, ruleSet); err != nil {
		return fmt.Errorf("failed to save moderation rules: %w", err)
	}

	s.logger.Info("submission flagged", "submission_id", submissionID)
	return nil
}
