package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edustack/classroom-service/internal/ai"
	"github.com/edustack/classroom-service/internal/events"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/validator"
)

// chatService runs the moderated chat turn: load rules, generate, persist.
// Generation and persistence fail distinctly; a failed generation never
// touches storage.
type chatService struct {
	repo      repositories.Repository
	generator ai.Generator
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewChatService(
	repo repositories.Repository,
	generator ai.Generator,
	publisher events.Publisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ChatService {
	return &chatService{
		repo:      repo,
		generator: generator,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

func (s *chatService) CreateChat(ctx context.Context, req *ChatRequest) (*models.ChatMessage, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	rules := s.activeRules(ctx)

	// Phase one: generate. The rule set rides along as a distinct field;
	// enforcement is advisory only, the provider output is not validated
	// against the rules.
	response, err := s.generator.Generate(ctx, ai.Request{
		Message: req.Message,
		Rules:   rules,
	})
	if err != nil {
		s.logger.Error("generation failed", "student_id", req.StudentID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrModerationService, err)
	}
	if response == "" {
		return nil, ErrModerationService
	}

	// Phase two: persist the exchange.
	message := &models.ChatMessage{
		StudentID: req.StudentID,
		Message:   req.Message,
		Response:  response,
	}
	if err := s.repo.Chat().Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to persist chat message: %w", err)
	}

	s.logger.Info("chat turn stored", "chat_id", message.ID, "student_id", message.StudentID)

	_ = s.publisher.Publish(ctx, events.Event{
		Type: events.ChatCreated,
		Payload: map[string]interface{}{
			"chat_id":    message.ID,
			"student_id": message.StudentID,
		},
	})

	return message, nil
}

func (s *chatService) ListChats(ctx context.Context) ([]*models.ChatMessage, error) {
	return s.repo.Chat().List(ctx)
}

func (s *chatService) ListChatsByStudent(ctx context.Context, studentID uint) ([]*models.ChatMessage, error) {
	return s.repo.Chat().ListByStudent(ctx, studentID)
}

// activeRules returns the stored rule set, or the built-in defaults when
// none exists or the lookup fails. A chat turn never fails because rules
// could not be loaded.
func (s *chatService) activeRules(ctx context.Context) []string {
	ruleSet, err := s.repo.Moderation().GetActive(ctx)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			s.logger.Warn("failed to load moderation rules, using defaults", "error", err)
		}
		return models.DefaultModerationRules()
	}
	if len(ruleSet.Rules) == 0 {
		return models.DefaultModerationRules()
	}
	return ruleSet.Rules
}
