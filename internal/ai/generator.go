package ai

import (
	"context"
	"errors"
)

var (
	ErrEmptyPrompt   = errors.New("empty prompt")
	ErrEmptyResponse = errors.New("provider returned no content")
)

// Request carries the student message and the moderation rule set as
// distinct fields; how they are rendered into a provider prompt is the
// client's concern, not the caller's.
type Request struct {
	Message string
	Rules   []string
}

// Generator is the text-generation provider contract. Implementations must
// be safe for concurrent use; the chat pipeline holds a single instance for
// the process lifetime.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
