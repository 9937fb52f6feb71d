package services

import (
	"errors"

	"github.com/edustack/classroom-service/internal/validator"
)

// ValidationErrors is re-exported so handlers can errors.As against the
// service package alone.
type ValidationErrors = validator.ValidationErrors

var (
	// Identity & access
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Registries
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrDuplicateWorkspace = errors.New("a workspace with this name already exists")
	ErrNotAStudent        = errors.New("account is missing or is not a student")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrReviewNotFound     = errors.New("review not found")

	// Moderation pipeline
	ErrModerationService = errors.New("moderation service failed to generate a response")
)
