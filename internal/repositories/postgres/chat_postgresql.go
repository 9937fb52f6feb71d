package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
)

type ChatPostgreSQL struct {
	db *gorm.DB
}

func NewChatPostgreSQL(db *gorm.DB) repositories.ChatRepository {
	return &ChatPostgreSQL{db: db}
}

func (c *ChatPostgreSQL) Create(ctx context.Context, message *models.ChatMessage) error {
	if err := c.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

func (c *ChatPostgreSQL) List(ctx context.Context) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	if err := c.db.WithContext(ctx).Order("created_at ASC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

func (c *ChatPostgreSQL) ListByStudent(ctx context.Context, studentID uint) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := c.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages by student: %w", err)
	}
	return messages, nil
}
