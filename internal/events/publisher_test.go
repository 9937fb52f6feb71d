package events

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestGoChannelPublisher_Publish(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	pub := NewGoChannelPublisher(logger)
	defer pub.Close()

	err := pub.Publish(context.Background(), Event{
		Type:    ChatCreated,
		Payload: map[string]interface{}{"student_id": uint(7)},
	})
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
}

func TestMockPublisher_RecordsEvents(t *testing.T) {
	pub := NewMockPublisher()

	if err := pub.Publish(context.Background(), Event{Type: SubmissionCreated}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if err := pub.Publish(context.Background(), Event{Type: StudentEnrolled}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	got := pub.PublishedEvents()
	if len(got) != 2 {
		t.Fatalf("recorded %d events, want 2", len(got))
	}
	if got[0].Type != SubmissionCreated || got[1].Type != StudentEnrolled {
		t.Errorf("unexpected event order: %v, %v", got[0].Type, got[1].Type)
	}
	if got[0].ID == "" {
		t.Error("event ID not assigned")
	}
}
