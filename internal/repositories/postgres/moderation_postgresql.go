package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
)

// ModerationPostgreSQL keeps a single active rule set: the most recently
// saved row wins.
type ModerationPostgreSQL struct {
	db *gorm.DB
}

func NewModerationPostgreSQL(db *gorm.DB) repositories.ModerationRepository {
	return &ModerationPostgreSQL{db: db}
}

func (m *ModerationPostgreSQL) GetActive(ctx context.Context) (*models.ModerationRuleSet, error) {
	var ruleSet models.ModerationRuleSet
	err := m.db.WithContext(ctx).
		Order("updated_at DESC").
		First(&ruleSet).Error
	if err != nil {
		return nil, err
	}
	return &ruleSet, nil
}

func (m *ModerationPostgreSQL) Save(ctx context.Context, ruleSet *models.ModerationRuleSet) error {
	if err := m.db.WithContext(ctx).Save(ruleSet).Error; err != nil {
		return fmt.Errorf("failed to save moderation rule set: %w", err)
	}
	return nil
}
