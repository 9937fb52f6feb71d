package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/edustack/classroom-service/internal/ai"
	"github.com/edustack/classroom-service/internal/auth"
	"github.com/edustack/classroom-service/internal/events"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/validator"
)

// ServiceManager owns the service instances and their lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Workspace() WorkspaceService
	Assignment() AssignmentService
	Submission() SubmissionService
	Review() ReviewService
	Chat() ChatService
	Moderation() ModerationService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type serviceManager struct {
	// Dependencies
	repo      repositories.Repository
	tokens    *auth.TokenManager
	generator ai.Generator
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator

	// Service instances
	authService       AuthService
	workspaceService  WorkspaceService
	assignmentService AssignmentService
	submissionService SubmissionService
	reviewService     ReviewService
	chatService       ChatService
	moderationService ModerationService
	exportService     ExportService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(
	repo repositories.Repository,
	tokens *auth.TokenManager,
	generator ai.Generator,
	publisher events.Publisher,
	logger *slog.Logger,
	validator *validator.Validator,
) ServiceManager {
	return &serviceManager{
		repo:      repo,
		tokens:    tokens,
		generator: generator,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Initialize builds all service instances.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.authService = NewAuthService(sm.repo, sm.tokens, sm.publisher, sm.logger, sm.validator)
	sm.workspaceService = NewWorkspaceService(sm.repo, sm.publisher, sm.logger, sm.validator)
	sm.assignmentService = NewAssignmentService(sm.repo, sm.logger, sm.validator)
	sm.submissionService = NewSubmissionService(sm.repo, sm.publisher, sm.logger, sm.validator)
	sm.reviewService = NewReviewService(sm.repo, sm.publisher, sm.logger, sm.validator)
	sm.chatService = NewChatService(sm.repo, sm.generator, sm.publisher, sm.logger, sm.validator)
	sm.moderationService = NewModerationService(sm.repo, sm.logger, sm.validator)
	sm.exportService = NewExportService(sm.repo, sm.logger)

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) require() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.authService
}

func (sm *serviceManager) Workspace() WorkspaceService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.workspaceService
}

func (sm *serviceManager) Assignment() AssignmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.assignmentService
}

func (sm *serviceManager) Submission() SubmissionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.submissionService
}

func (sm *serviceManager) Review() ReviewService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.reviewService
}

func (sm *serviceManager) Chat() ChatService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.chatService
}

func (sm *serviceManager) Moderation() ModerationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.moderationService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.require()
	return sm.exportService
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}
	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.publisher.Close(); err != nil {
		sm.logger.Error("Failed to close event publisher", "error", err)
	}
	if err := sm.repo.Close(); err != nil {
		sm.logger.Error("Failed to close repository", "error", err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")

	return nil
}
