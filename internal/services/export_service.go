package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
)

const gradebookSheet = "Gradebook"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// WorkspaceGradebook builds a spreadsheet with one row per submission in
// the workspace. Ungraded submissions leave the score cell empty.
func (s *exportService) WorkspaceGradebook(ctx context.Context, workspaceID uint) (*excelize.File, error) {
	workspace, err := s.repo.Workspace().GetByID(ctx, workspaceID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	assignments, err := s.repo.Assignment().ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignmentIDs := make([]uint, 0, len(assignments))
	byID := make(map[uint]*models.Assignment, len(assignments))
	for _, a := range assignments {
		assignmentIDs = append(assignmentIDs, a.ID)
		byID[a.ID] = a
	}

	var submissions []*models.Submission
	if len(assignmentIDs) > 0 {
		submissions, err = s.repo.Submission().ListByAssignmentIDs(ctx, assignmentIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to list submissions: %w", err)
		}
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(gradebookSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Workspace", "Assignment", "Student ID", "Score", "Max Score", "Status", "Flagged"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(gradebookSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, submission := range submissions {
		assignment := byID[submission.AssignmentID]
		if assignment == nil {
			continue
		}

		values := []interface{}{
			workspace.Name,
			assignment.Title,
			submission.StudentID,
			nil,
			assignment.MaxScore,
			string(assignment.Status),
			submission.IsFlagged,
		}
		if submission.Score != nil {
			values[3] = *submission.Score
		}

		for col, value := range values {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(gradebookSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
		row++
	}

	s.logger.Info("gradebook exported", "workspace_id", workspaceID, "rows", row-2)
	return f, nil
}
