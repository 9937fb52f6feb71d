package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/datatypes"

	"github.com/edustack/classroom-service/internal/auth"
	"github.com/edustack/classroom-service/internal/events"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/repositories"
	"github.com/edustack/classroom-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	tokens    *auth.TokenManager
	publisher events.Publisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(
	repo repositories.Repository,
	tokens *auth.TokenManager,
	publisher events.Publisher,
	logger *slog.Logger,
	validator *validator.Validator,
) AuthService {
	return &authService{
		repo:      repo,
		tokens:    tokens,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// Signup creates an account. The role is validated against the permission
// table here, at creation time, so authorization never meets an unknown
// role later.
func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*models.Account, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	role := strings.ToLower(req.Role)
	if _, err := s.repo.Role().Get(ctx, role); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUnknownRole
		}
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	exists, err := s.repo.Account().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
		Majors:    datatypes.NewJSONSlice(req.Majors),
		Role:      role,
	}

	if err := s.repo.Account().Create(ctx, account); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created", "account_id", account.ID, "role", account.Role)

	_ = s.publisher.Publish(ctx, events.Event{
		Type: events.AccountCreated,
		Payload: map[string]interface{}{
			"account_id": account.ID,
			"role":       account.Role,
		},
	})

	return account, nil
}

// Login verifies the password and issues a signed credential carrying the
// account id and role.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	account, err := s.repo.Account().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("login", "account_id", account.ID)
	return &LoginResponse{Token: token}, nil
}

func (s *authService) Profile(ctx context.Context, accountID uint) (*models.Account, error) {
	account, err := s.repo.Account().GetByID(ctx, accountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *authService) ListStudents(ctx context.Context) ([]*models.Account, error) {
	return s.repo.Account().ListByRole(ctx, models.RoleStudent)
}
