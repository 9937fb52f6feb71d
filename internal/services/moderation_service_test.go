package services

import (
	"context"
	"errors"
	"testing"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/validator"
)

func TestModerationService_ActiveRules(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing stored", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewModerationService(repo, testLogger(), validator.New())

		ruleSet, err := svc.ActiveRules(ctx)
		if err != nil {
			t.Fatalf("ActiveRules failed: %v", err)
		}
		if len(ruleSet.Rules) != len(models.DefaultModerationRules()) {
			t.Errorf("got %d rules, want defaults", len(ruleSet.Rules))
		}
		if ruleSet.ID != 0 {
			t.Error("defaults should not be persisted")
		}
	})

	t.Run("returns stored set", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewModerationService(repo, testLogger(), validator.New())

		if _, err := svc.ReplaceRules(ctx, &ModerationRulesRequest{Rules: []string{"Be kind."}}); err != nil {
			t.Fatalf("ReplaceRules failed: %v", err)
		}
		ruleSet, err := svc.ActiveRules(ctx)
		if err != nil {
			t.Fatalf("ActiveRules failed: %v", err)
		}
		if len(ruleSet.Rules) != 1 || ruleSet.Rules[0] != "Be kind." {
			t.Errorf("unexpected rules: %v", ruleSet.Rules)
		}
	})
}

func TestModerationService_ReplaceRules(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewModerationService(repo, testLogger(), validator.New())

	t.Run("rejects empty list", func(t *testing.T) {
		_, err := svc.ReplaceRules(ctx, &ModerationRulesRequest{})
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected validation errors, got %v", err)
		}
	})

	t.Run("replacement keeps flags", func(t *testing.T) {
		submission := &models.Submission{AssignmentID: 1, StudentID: 2, Body: "x"}
		_ = repo.Submission().Create(ctx, submission)
		if err := svc.FlagSubmission(ctx, submission.ID); err != nil {
			t.Fatalf("FlagSubmission failed: %v", err)
		}

		ruleSet, err := svc.ReplaceRules(ctx, &ModerationRulesRequest{Rules: []string{"New rule."}})
		if err != nil {
			t.Fatalf("ReplaceRules failed: %v", err)
		}
		if len(ruleSet.FlaggedSubmissions) != 1 || ruleSet.FlaggedSubmissions[0] != submission.ID {
			t.Errorf("flags lost across replacement: %v", ruleSet.FlaggedSubmissions)
		}
	})
}

func TestModerationService_FlagSubmission(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewModerationService(repo, testLogger(), validator.New())

	submission := &models.Submission{AssignmentID: 1, StudentID: 2, Body: "x"}
	_ = repo.Submission().Create(ctx, submission)

	if err := svc.FlagSubmission(ctx, submission.ID); err != nil {
		t.Fatalf("FlagSubmission failed: %v", err)
	}

	stored, _ := repo.Submission().GetByID(ctx, submission.ID)
	if !stored.IsFlagged {
		t.Error("submission not marked flagged")
	}

	// Flagging twice must not duplicate the record.
	if err := svc.FlagSubmission(ctx, submission.ID); err != nil {
		t.Fatalf("second FlagSubmission failed: %v", err)
	}
	ruleSet, _ := repo.Moderation().GetActive(ctx)
	if len(ruleSet.FlaggedSubmissions) != 1 {
		t.Errorf("flag list holds %d entries, want 1", len(ruleSet.FlaggedSubmissions))
	}

	if err := svc.FlagSubmission(ctx, 9999); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}
