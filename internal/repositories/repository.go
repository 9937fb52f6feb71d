package repositories

import (
	"context"

	"github.com/edustack/classroom-service/internal/models"
)

// AccountRepository stores user accounts. Passwords arrive pre-hashed.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role string) ([]*models.Account, error)
}

// RoleRepository stores the role -> permission set lookup table.
type RoleRepository interface {
	Get(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context) ([]*models.Role, error)
	Seed(ctx context.Context, roles []models.Role) error
}

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	GetByID(ctx context.Context, id uint) (*models.Workspace, error)
	List(ctx context.Context) ([]*models.Workspace, error)
	ListByEducator(ctx context.Context, educatorID uint) ([]*models.Workspace, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Workspace, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, workspace *models.Workspace) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uint) (*models.Assignment, error)
	List(ctx context.Context) ([]*models.Assignment, error)
	ListByWorkspace(ctx context.Context, workspaceID uint) ([]*models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id uint) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	List(ctx context.Context) ([]*models.Submission, error)
	ListByAssignmentAndStudent(ctx context.Context, assignmentID, studentID uint) ([]*models.Submission, error)
	ListByAssignmentIDs(ctx context.Context, assignmentIDs []uint) ([]*models.Submission, error)
	Update(ctx context.Context, submission *models.Submission) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListBySubmission(ctx context.Context, submissionID uint) ([]*models.Review, error)
	Update(ctx context.Context, review *models.Review) error
}

type ChatRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	List(ctx context.Context) ([]*models.ChatMessage, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.ChatMessage, error)
}

// ModerationRepository stores the active moderation rule set. GetActive
// returns a not-found error when nothing has been stored yet.
type ModerationRepository interface {
	GetActive(ctx context.Context) (*models.ModerationRuleSet, error)
	Save(ctx context.Context, ruleSet *models.ModerationRuleSet) error
}

// Repository aggregates all stores behind one injection point.
type Repository interface {
	Account() AccountRepository
	Role() RoleRepository
	Workspace() WorkspaceRepository
	Assignment() AssignmentRepository
	Submission() SubmissionRepository
	Review() ReviewRepository
	Chat() ChatRepository
	Moderation() ModerationRepository

	Ping(ctx context.Context) error
	Close() error
}
