package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ali has 3 apples and buys 4 more. How many does he have?", 7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected store-generated session ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected non-zero created_at")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ProblemText != created.ProblemText {
		t.Errorf("problem_text = %q, want %q", got.ProblemText, created.ProblemText)
	}
	if got.CorrectAnswer != 7 {
		t.Errorf("correct_answer = %v, want 7", got.CorrectAnswer)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		sess, err := repo.Create(ctx, "problem", 1)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[sess.ID] {
			t.Fatalf("duplicate session ID %q", sess.ID)
		}
		seen[sess.ID] = true
	}
}

func TestSessionGetNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	_, err := repo.Get(context.Background(), "no-such-session")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionByIDsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		sess, err := repo.Create(ctx, "problem", float64(i))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, sess.ID)
		time.Sleep(5 * time.Millisecond) // distinct created_at
	}

	// Query including an unknown ID; it should be skipped.
	got, err := repo.ByIDs(ctx, append([]string{"unknown"}, ids...))
	if err != nil {
		t.Fatalf("by ids: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].CreatedAt.Before(got[i].CreatedAt) {
			t.Errorf("sessions not ordered newest first at index %d", i)
		}
	}
	if got[0].CorrectAnswer != 2 {
		t.Errorf("newest session correct_answer = %v, want 2", got[0].CorrectAnswer)
	}
}

func TestSubmissionCreateAndQuery(t *testing.T) {
	s := openTestStore(t)
	sessions := s.SessionRepo()
	subs := s.SubmissionRepo()
	ctx := context.Background()

	sess, err := sessions.Create(ctx, "problem", 42)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	attempts := []*Submission{
		{SessionID: sess.ID, UserAnswer: 40, IsCorrect: false, FeedbackText: "not quite"},
		{SessionID: sess.ID, UserAnswer: 42, IsCorrect: true, FeedbackText: "well done"},
	}
	for i, sub := range attempts {
		if err := subs.Create(ctx, sub); err != nil {
			t.Fatalf("create submission %d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	got, err := subs.BySessionIDs(ctx, []string{sess.ID})
	if err != nil {
		t.Fatalf("by session ids: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Oldest first.
	if got[0].IsCorrect || !got[1].IsCorrect {
		t.Errorf("submissions not ordered oldest first: %+v", got)
	}
	if got[1].FeedbackText != "well done" {
		t.Errorf("feedback_text = %q, want %q", got[1].FeedbackText, "well done")
	}
}

func TestSubmissionRequiresExistingSession(t *testing.T) {
	s := openTestStore(t)
	subs := s.SubmissionRepo()

	err := subs.Create(context.Background(), &Submission{
		SessionID:  "no-such-session",
		UserAnswer: 1,
	})
	if err == nil {
		t.Fatal("expected foreign-key error for unknown session")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "problem-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "feedback", Success: false, ErrorMessage: "boom"},
	}
	for i, d := range data {
		if err := events.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := events.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}

	gen, err := events.QueryLLMEvents(ctx, QueryOpts{Purpose: "problem-gen", Limit: 10})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(gen) != 1 || gen[0].InputTokens != 100 {
		t.Fatalf("filtered query = %+v, want one problem-gen event", gen)
	}
}
