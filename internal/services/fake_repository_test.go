package services

import (
	"context"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	mu sync.Mutex

	nextID      uint
	accounts    map[uint]*models.Account
	roles       map[string]*models.Role
	workspaces  map[uint]*models.Workspace
	assignments map[uint]*models.Assignment
	submissions map[uint]*models.Submission
	reviews     map[uint]*models.Review
	chats       []*models.ChatMessage
	ruleSet     *models.ModerationRuleSet

	failNext error
}

func newFakeRepository() *fakeRepository {
	repo := &fakeRepository{
		accounts:    make(map[uint]*models.Account),
		roles:       make(map[string]*models.Role),
		workspaces:  make(map[uint]*models.Workspace),
		assignments: make(map[uint]*models.Assignment),
		submissions: make(map[uint]*models.Submission),
		reviews:     make(map[uint]*models.Review),
	}
	for _, role := range models.DefaultRoles() {
		r := role
		repo.roles[r.Name] = &r
	}
	return repo
}

func (f *fakeRepository) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepository) takeErr() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeRepository) Account() repositories.AccountRepository       { return (*fakeAccounts)(f) }
func (f *fakeRepository) Role() repositories.RoleRepository             { return (*fakeRoles)(f) }
func (f *fakeRepository) Workspace() repositories.WorkspaceRepository   { return (*fakeWorkspaces)(f) }
func (f *fakeRepository) Assignment() repositories.AssignmentRepository { return (*fakeAssignments)(f) }
func (f *fakeRepository) Submission() repositories.SubmissionRepository { return (*fakeSubmissions)(f) }
func (f *fakeRepository) Review() repositories.ReviewRepository         { return (*fakeReviews)(f) }
func (f *fakeRepository) Chat() repositories.ChatRepository             { return (*fakeChats)(f) }
func (f *fakeRepository) Moderation() repositories.ModerationRepository { return (*fakeModeration)(f) }
func (f *fakeRepository) Ping(ctx context.Context) error                { return nil }
func (f *fakeRepository) Close() error                                  { return nil }

type fakeAccounts fakeRepository

func (f *fakeAccounts) Create(_ context.Context, account *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account.ID = (*fakeRepository)(f).id()
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id uint) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccounts) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeAccounts) ListByRole(_ context.Context, role string) ([]*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Account
	for _, account := range f.accounts {
		if account.Role == role {
			out = append(out, account)
		}
	}
	return out, nil
}

type fakeRoles fakeRepository

func (f *fakeRoles) Get(_ context.Context, name string) (*models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	role, ok := f.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (f *fakeRoles) List(_ context.Context) ([]*models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Role
	for _, role := range f.roles {
		out = append(out, role)
	}
	return out, nil
}

func (f *fakeRoles) Seed(_ context.Context, roles []models.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, role := range roles {
		r := role
		if _, ok := f.roles[r.Name]; !ok {
			f.roles[r.Name] = &r
		}
	}
	return nil
}

type fakeWorkspaces fakeRepository

func (f *fakeWorkspaces) Create(_ context.Context, workspace *models.Workspace) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	workspace.ID = (*fakeRepository)(f).id()
	f.workspaces[workspace.ID] = workspace
	return nil
}

func (f *fakeWorkspaces) GetByID(_ context.Context, id uint) (*models.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	workspace, ok := f.workspaces[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return workspace, nil
}

func (f *fakeWorkspaces) List(_ context.Context) ([]*models.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Workspace
	for _, workspace := range f.workspaces {
		out = append(out, workspace)
	}
	return out, nil
}

func (f *fakeWorkspaces) ListByEducator(_ context.Context, educatorID uint) ([]*models.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Workspace
	for _, workspace := range f.workspaces {
		if workspace.EducatorID == educatorID {
			out = append(out, workspace)
		}
	}
	return out, nil
}

func (f *fakeWorkspaces) ListByStudent(_ context.Context, studentID uint) ([]*models.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Workspace
	for _, workspace := range f.workspaces {
		if workspace.HasStudent(studentID) {
			out = append(out, workspace)
		}
	}
	return out, nil
}

func (f *fakeWorkspaces) ExistsByName(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, workspace := range f.workspaces {
		if workspace.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWorkspaces) Update(_ context.Context, workspace *models.Workspace) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.workspaces[workspace.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.workspaces[workspace.ID] = workspace
	return nil
}

type fakeAssignments fakeRepository

func (f *fakeAssignments) Create(_ context.Context, assignment *models.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment.ID = (*fakeRepository)(f).id()
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignments) GetByID(_ context.Context, id uint) (*models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment, ok := f.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return assignment, nil
}

func (f *fakeAssignments) List(_ context.Context) ([]*models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Assignment
	for _, assignment := range f.assignments {
		out = append(out, assignment)
	}
	return out, nil
}

func (f *fakeAssignments) ListByWorkspace(_ context.Context, workspaceID uint) ([]*models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Assignment
	for _, assignment := range f.assignments {
		if assignment.WorkspaceID == workspaceID {
			out = append(out, assignment)
		}
	}
	return out, nil
}

func (f *fakeAssignments) Update(_ context.Context, assignment *models.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.assignments[assignment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignments) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.assignments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.assignments, id)
	return nil
}

type fakeSubmissions fakeRepository

func (f *fakeSubmissions) Create(_ context.Context, submission *models.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	submission.ID = (*fakeRepository)(f).id()
	f.submissions[submission.ID] = submission
	return nil
}

func (f *fakeSubmissions) GetByID(_ context.Context, id uint) (*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	submission, ok := f.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return submission, nil
}

func (f *fakeSubmissions) List(_ context.Context) ([]*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Submission
	for _, submission := range f.submissions {
		out = append(out, submission)
	}
	return out, nil
}

func (f *fakeSubmissions) ListByAssignmentAndStudent(_ context.Context, assignmentID, studentID uint) ([]*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Submission
	for _, submission := range f.submissions {
		if submission.AssignmentID == assignmentID && submission.StudentID == studentID {
			out = append(out, submission)
		}
	}
	return out, nil
}

func (f *fakeSubmissions) ListByAssignmentIDs(_ context.Context, assignmentIDs []uint) ([]*models.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[uint]bool, len(assignmentIDs))
	for _, id := range assignmentIDs {
		wanted[id] = true
	}
	var out []*models.Submission
	for _, submission := range f.submissions {
		if wanted[submission.AssignmentID] {
			out = append(out, submission)
		}
	}
	return out, nil
}

func (f *fakeSubmissions) Update(_ context.Context, submission *models.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.submissions[submission.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.submissions[submission.ID] = submission
	return nil
}

type fakeReviews fakeRepository

func (f *fakeReviews) Create(_ context.Context, review *models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	review.ID = (*fakeRepository)(f).id()
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviews) GetByID(_ context.Context, id uint) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return review, nil
}

func (f *fakeReviews) ListBySubmission(_ context.Context, submissionID uint) ([]*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Review
	for _, review := range f.reviews {
		if review.SubmissionID == submissionID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (f *fakeReviews) Update(_ context.Context, review *models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[review.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.reviews[review.ID] = review
	return nil
}

type fakeChats fakeRepository

func (f *fakeChats) Create(_ context.Context, message *models.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := (*fakeRepository)(f).takeErr(); err != nil {
		return err
	}
	message.ID = (*fakeRepository)(f).id()
	f.chats = append(f.chats, message)
	return nil
}

func (f *fakeChats) List(_ context.Context) ([]*models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.ChatMessage, len(f.chats))
	copy(out, f.chats)
	return out, nil
}

func (f *fakeChats) ListByStudent(_ context.Context, studentID uint) ([]*models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ChatMessage
	for _, message := range f.chats {
		if message.StudentID == studentID {
			out = append(out, message)
		}
	}
	return out, nil
}

type fakeModeration fakeRepository

func (f *fakeModeration) GetActive(_ context.Context) (*models.ModerationRuleSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ruleSet == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.ruleSet, nil
}

func (f *fakeModeration) Save(_ context.Context, ruleSet *models.ModerationRuleSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ruleSet.ID == 0 {
		ruleSet.ID = (*fakeRepository)(f).id()
	}
	f.ruleSet = ruleSet
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
