package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edustack/classroom-service/internal/models"
)

func TestExportService_WorkspaceGradebook(t *testing.T) {
	ctx := context.Background()

	t.Run("one row per submission", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewExportService(repo, testLogger())

		workspace := &models.Workspace{Name: "CS101", EducatorID: 1}
		_ = repo.Workspace().Create(ctx, workspace)
		assignment := &models.Assignment{
			Title:       "HW1",
			Description: "First homework",
			WorkspaceID: workspace.ID,
			EducatorID:  1,
			DueDate:     time.Now(),
			MaxScore:    100,
			Status:      models.AssignmentPublished,
		}
		_ = repo.Assignment().Create(ctx, assignment)

		score := 95
		graded := &models.Submission{AssignmentID: assignment.ID, StudentID: 42, Body: "a", Score: &score}
		ungraded := &models.Submission{AssignmentID: assignment.ID, StudentID: 43, Body: "b"}
		_ = repo.Submission().Create(ctx, graded)
		_ = repo.Submission().Create(ctx, ungraded)

		f, err := svc.WorkspaceGradebook(ctx, workspace.ID)
		if err != nil {
			t.Fatalf("WorkspaceGradebook failed: %v", err)
		}

		rows, err := f.GetRows(gradebookSheet)
		if err != nil {
			t.Fatalf("GetRows failed: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("sheet holds %d rows, want header plus 2", len(rows))
		}
		if rows[0][0] != "Workspace" || rows[0][1] != "Assignment" {
			t.Errorf("unexpected header row: %v", rows[0])
		}
		if rows[1][0] != "CS101" || rows[1][1] != "HW1" {
			t.Errorf("unexpected data row: %v", rows[1])
		}
	})

	t.Run("empty workspace yields header only", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewExportService(repo, testLogger())

		workspace := &models.Workspace{Name: "Empty", EducatorID: 1}
		_ = repo.Workspace().Create(ctx, workspace)

		f, err := svc.WorkspaceGradebook(ctx, workspace.ID)
		if err != nil {
			t.Fatalf("WorkspaceGradebook failed: %v", err)
		}
		rows, err := f.GetRows(gradebookSheet)
		if err != nil {
			t.Fatalf("GetRows failed: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("sheet holds %d rows, want header only", len(rows))
		}
	})

	t.Run("unknown workspace", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewExportService(repo, testLogger())

		_, err := svc.WorkspaceGradebook(ctx, 9999)
		if !errors.Is(err, ErrWorkspaceNotFound) {
			t.Fatalf("expected ErrWorkspaceNotFound, got %v", err)
		}
	})
}
