package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/edustack/classroom-service/internal/repositories"
)

// PostgreSQLRepository implements the aggregate Repository interface over
// gorm, with optional redis caching for the hot lookups (roles, accounts).
type PostgreSQLRepository struct {
	db          *gorm.DB
	redisClient *redis.Client

	account    repositories.AccountRepository
	role       repositories.RoleRepository
	workspace  repositories.WorkspaceRepository
	assignment repositories.AssignmentRepository
	submission repositories.SubmissionRepository
	review     repositories.ReviewRepository
	chat       repositories.ChatRepository
	moderation repositories.ModerationRepository
}

// RepositoryConfig holds what repository construction needs.
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	repo := &PostgreSQLRepository{
		db:          config.DB,
		redisClient: config.RedisClient,
	}

	repo.account = NewAccountPostgreSQL(config.DB, config.RedisClient)
	repo.role = NewRolePostgreSQL(config.DB, config.RedisClient)
	repo.workspace = NewWorkspacePostgreSQL(config.DB)
	repo.assignment = NewAssignmentPostgreSQL(config.DB)
	repo.submission = NewSubmissionPostgreSQL(config.DB)
	repo.review = NewReviewPostgreSQL(config.DB)
	repo.chat = NewChatPostgreSQL(config.DB)
	repo.moderation = NewModerationPostgreSQL(config.DB)

	return repo
}

func (r *PostgreSQLRepository) Account() repositories.AccountRepository       { return r.account }
func (r *PostgreSQLRepository) Role() repositories.RoleRepository             { return r.role }
func (r *PostgreSQLRepository) Workspace() repositories.WorkspaceRepository   { return r.workspace }
func (r *PostgreSQLRepository) Assignment() repositories.AssignmentRepository { return r.assignment }
func (r *PostgreSQLRepository) Submission() repositories.SubmissionRepository { return r.submission }
func (r *PostgreSQLRepository) Review() repositories.ReviewRepository         { return r.review }
func (r *PostgreSQLRepository) Chat() repositories.ChatRepository             { return r.chat }
func (r *PostgreSQLRepository) Moderation() repositories.ModerationRepository { return r.moderation }

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("cache ping failed: %w", err)
		}
	}
	return nil
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close redis: %w", err)
		}
	}
	return nil
}

// RepositoryManager handles repository lifecycle around startup/shutdown.
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) *RepositoryManager {
	return &RepositoryManager{config: config}
}

func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if rm.config.RedisClient != nil {
		if err := rm.config.RedisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
	}

	rm.repo = NewPostgreSQLRepository(rm.config)
	return nil
}

func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}
	return rm.repo.Close()
}
