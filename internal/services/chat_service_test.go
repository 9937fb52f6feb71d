package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/datatypes"

	"github.com/edustack/classroom-service/internal/ai"
	"github.com/edustack/classroom-service/internal/events"
	"github.com/edustack/classroom-service/internal/models"
	"github.com/edustack/classroom-service/internal/validator"
)

// stubGenerator records the last request and plays back a canned result.
type stubGenerator struct {
	response string
	err      error
	lastReq  ai.Request
	calls    int
}

func (g *stubGenerator) Generate(_ context.Context, req ai.Request) (string, error) {
	g.lastReq = req
	g.calls++
	return g.response, g.err
}

func TestChatService_CreateChat(t *testing.T) {
	ctx := context.Background()

	t.Run("stores turn and publishes", func(t *testing.T) {
		repo := newFakeRepository()
		publisher := events.NewMockPublisher()
		gen := &stubGenerator{response: "Consider breaking the problem into steps."}
		svc := NewChatService(repo, gen, publisher, testLogger(), validator.New())

		message, err := svc.CreateChat(ctx, &ChatRequest{StudentID: 7, Message: "How do I start?"})
		if err != nil {
			t.Fatalf("CreateChat failed: %v", err)
		}
		if message.Response != "Consider breaking the problem into steps." {
			t.Errorf("unexpected response: %q", message.Response)
		}

		stored, _ := repo.Chat().List(ctx)
		if len(stored) != 1 {
			t.Fatalf("stored %d turns, want 1", len(stored))
		}

		published := publisher.PublishedEvents()
		if len(published) != 1 || published[0].Type != events.ChatCreated {
			t.Fatalf("expected one %s event, got %v", events.ChatCreated, published)
		}
	})

	t.Run("falls back to default rules", func(t *testing.T) {
		repo := newFakeRepository()
		gen := &stubGenerator{response: "ok"}
		svc := NewChatService(repo, gen, events.NewMockPublisher(), testLogger(), validator.New())

		if _, err := svc.CreateChat(ctx, &ChatRequest{StudentID: 1, Message: "hi"}); err != nil {
			t.Fatalf("CreateChat failed: %v", err)
		}

		defaults := models.DefaultModerationRules()
		if len(gen.lastReq.Rules) != len(defaults) {
			t.Fatalf("sent %d rules, want %d defaults", len(gen.lastReq.Rules), len(defaults))
		}
		if gen.lastReq.Rules[0] != defaults[0] {
			t.Errorf("first rule %q, want %q", gen.lastReq.Rules[0], defaults[0])
		}
	})

	t.Run("uses stored rules when present", func(t *testing.T) {
		repo := newFakeRepository()
		_ = repo.Moderation().Save(ctx, &models.ModerationRuleSet{
			Rules: datatypes.NewJSONSlice([]string{"Answer in French only."}),
		})
		gen := &stubGenerator{response: "Bien sûr."}
		svc := NewChatService(repo, gen, events.NewMockPublisher(), testLogger(), validator.New())

		if _, err := svc.CreateChat(ctx, &ChatRequest{StudentID: 1, Message: "hi"}); err != nil {
			t.Fatalf("CreateChat failed: %v", err)
		}
		if len(gen.lastReq.Rules) != 1 || gen.lastReq.Rules[0] != "Answer in French only." {
			t.Errorf("unexpected rules sent: %v", gen.lastReq.Rules)
		}
	})

	t.Run("provider failure persists nothing", func(t *testing.T) {
		repo := newFakeRepository()
		publisher := events.NewMockPublisher()
		gen := &stubGenerator{err: errors.New("quota exceeded")}
		svc := NewChatService(repo, gen, publisher, testLogger(), validator.New())

		_, err := svc.CreateChat(ctx, &ChatRequest{StudentID: 7, Message: "hello"})
		if !errors.Is(err, ErrModerationService) {
			t.Fatalf("expected ErrModerationService, got %v", err)
		}

		stored, _ := repo.Chat().List(ctx)
		if len(stored) != 0 {
			t.Errorf("stored %d turns after failure, want 0", len(stored))
		}
		if got := len(publisher.PublishedEvents()); got != 0 {
			t.Errorf("published %d events after failure, want 0", got)
		}
	})

	t.Run("empty provider response", func(t *testing.T) {
		repo := newFakeRepository()
		gen := &stubGenerator{response: ""}
		svc := NewChatService(repo, gen, events.NewMockPublisher(), testLogger(), validator.New())

		_, err := svc.CreateChat(ctx, &ChatRequest{StudentID: 7, Message: "hello"})
		if !errors.Is(err, ErrModerationService) {
			t.Fatalf("expected ErrModerationService, got %v", err)
		}
	})

	t.Run("lists history by student", func(t *testing.T) {
		repo := newFakeRepository()
		gen := &stubGenerator{response: "ok"}
		svc := NewChatService(repo, gen, events.NewMockPublisher(), testLogger(), validator.New())

		for _, req := range []*ChatRequest{
			{StudentID: 7, Message: "first"},
			{StudentID: 9, Message: "other student"},
			{StudentID: 7, Message: "second"},
		} {
			if _, err := svc.CreateChat(ctx, req); err != nil {
				t.Fatalf("CreateChat failed: %v", err)
			}
		}

		history, err := svc.ListChatsByStudent(ctx, 7)
		if err != nil {
			t.Fatalf("ListChatsByStudent failed: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("got %d turns for student 7, want 2", len(history))
		}
		for _, turn := range history {
			if turn.StudentID != 7 {
				t.Errorf("turn %d belongs to student %d", turn.ID, turn.StudentID)
			}
		}
	})

	t.Run("rejects blank message", func(t *testing.T) {
		repo := newFakeRepository()
		gen := &stubGenerator{response: "ok"}
		svc := NewChatService(repo, gen, events.NewMockPublisher(), testLogger(), validator.New())

		_, err := svc.CreateChat(ctx, &ChatRequest{StudentID: 7})
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected validation errors, got %v", err)
		}
		if gen.calls != 0 {
			t.Error("generator called for invalid request")
		}
	})
}
