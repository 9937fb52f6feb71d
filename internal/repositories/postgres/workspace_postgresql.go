package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
)

type WorkspacePostgreSQL struct {
	db *gorm.DB
}

func NewWorkspacePostgreSQL(db *gorm.DB) repositories.WorkspaceRepository {
	return &WorkspacePostgreSQL{db: db}
}

func (w *WorkspacePostgreSQL) Create(ctx context.Context, workspace *models.Workspace) error {
	if err := w.db.WithContext(ctx).Create(workspace).Error; err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return nil
}

func (w *WorkspacePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := w.db.WithContext(ctx).First(&workspace, id).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (w *WorkspacePostgreSQL) List(ctx context.Context) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	if err := w.db.WithContext(ctx).Order("created_at ASC").Find(&workspaces).Error; err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

func (w *WorkspacePostgreSQL) ListByEducator(ctx context.Context, educatorID uint) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	err := w.db.WithContext(ctx).
		Where("educator_id = ?", educatorID).
		Order("created_at ASC").
		Find(&workspaces).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces by educator: %w", err)
	}
	return workspaces, nil
}

// ListByStudent matches on JSON containment over the enrolled-student list.
func (w *WorkspacePostgreSQL) ListByStudent(ctx context.Context, studentID uint) ([]*models.Workspace, error) {
	var workspaces []*models.Workspace
	err := w.db.WithContext(ctx).
		Where("students @> ?", fmt.Sprintf("[%d]", studentID)).
		Order("created_at ASC").
		Find(&workspaces).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces by student: %w", err)
	}
	return workspaces, nil
}

func (w *WorkspacePostgreSQL) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := w.db.WithContext(ctx).
		Model(&models.Workspace{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check workspace name: %w", err)
	}
	return count > 0, nil
}

func (w *WorkspacePostgreSQL) Update(ctx context.Context, workspace *models.Workspace) error {
	result := w.db.WithContext(ctx).
		Model(&models.Workspace{}).
		Where("id = ?", workspace.ID).
		Updates(map[string]interface{}{
			"name":     workspace.Name,
			"students": workspace.Students,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update workspace: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
