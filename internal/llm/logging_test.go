package llm

import (
	"context"
	"testing"

	"github.com/abhisek/mathtutor/internal/store"
)

// recordingEventRepo captures appended events in memory.
type recordingEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingEventRepo{}
	p := WithLogging(NewMockProvider(
		MockResponse{Text: "ok", Usage: Usage{InputTokens: 12, OutputTokens: 7}},
	), repo)

	ctx := WithPurpose(context.Background(), "problem-gen")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success {
		t.Error("expected success event")
	}
	if e.Purpose != "problem-gen" {
		t.Errorf("purpose = %q, want problem-gen", e.Purpose)
	}
	if e.InputTokens != 12 || e.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", e.InputTokens, e.OutputTokens)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingEventRepo{}
	p := WithLogging(NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
	), repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message on event")
	}
}

func TestNewProvider_MockIsLogged(t *testing.T) {
	repo := &recordingEventRepo{}
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, repo)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	// Empty mock queue fails the call, but the event is still recorded.
	_, _ = p.Generate(context.Background(), Request{})
	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1 (mock provider must log like the real ones)", len(repo.events))
	}
}
