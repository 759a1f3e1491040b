package tutor

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/store"
)

// failingSessionRepo fails the test on any access.
type failingSessionRepo struct{ t *testing.T }

func (r *failingSessionRepo) Create(context.Context, string, float64) (*store.Session, error) {
	r.t.Fatal("unexpected SessionRepo.Create")
	return nil, nil
}

func (r *failingSessionRepo) Get(context.Context, string) (*store.Session, error) {
	r.t.Fatal("unexpected SessionRepo.Get")
	return nil, nil
}

func (r *failingSessionRepo) ByIDs(context.Context, []string) ([]*store.Session, error) {
	r.t.Fatal("unexpected SessionRepo.ByIDs")
	return nil, nil
}

type failingSubmissionRepo struct{ t *testing.T }

func (r *failingSubmissionRepo) Create(context.Context, *store.Submission) error {
	r.t.Fatal("unexpected SubmissionRepo.Create")
	return nil
}

func (r *failingSubmissionRepo) BySessionIDs(context.Context, []string) ([]*store.Submission, error) {
	r.t.Fatal("unexpected SubmissionRepo.BySessionIDs")
	return nil, nil
}

func TestHistoryEmptySetSkipsStore(t *testing.T) {
	svc := NewService(&failingSessionRepo{t}, &failingSubmissionRepo{t}, llm.NewMockProvider())

	entries, err := svc.History(context.Background(), nil)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("len = %d, want 0", len(entries))
	}

	entries, err = svc.History(context.Background(), []string{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("len = %d, want 0", len(entries))
	}
}

func TestHistoryJoinsAndSorts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "wrong, hint: multiply"},
		llm.MockResponse{Text: "correct, nice work"},
		llm.MockResponse{Text: "answer revealed"},
	)
	svc, st := newTestService(t, mock)
	ctx := context.Background()

	// Older session gets two graded attempts, newer one a reveal.
	older := createSession(t, st, 42)
	time.Sleep(5 * time.Millisecond)
	newer := createSession(t, st, 7)

	if _, err := svc.Submit(ctx, older.ID, 40); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.Submit(ctx, older.ID, 42); err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	if _, err := svc.Reveal(ctx, newer.ID); err != nil {
		t.Fatalf("reveal: %v", err)
	}

	entries, err := svc.History(ctx, []string{older.ID, newer.ID})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}

	// Sessions newest first.
	if entries[0].SessionID != newer.ID {
		t.Errorf("entries[0] = %s, want newest session %s", entries[0].SessionID, newer.ID)
	}

	// The reveal shows up as exactly one revealed, correct attempt.
	if len(entries[0].Submissions) != 1 {
		t.Fatalf("newest submissions = %d, want 1", len(entries[0].Submissions))
	}
	reveal := entries[0].Submissions[0]
	if !reveal.IsRevealed || !reveal.IsCorrect || reveal.UserAnswer != 7 {
		t.Errorf("reveal attempt = %+v", reveal)
	}

	// The older session's attempts come back oldest first.
	attempts := entries[1].Submissions
	if len(attempts) != 2 {
		t.Fatalf("older submissions = %d, want 2", len(attempts))
	}
	if attempts[0].IsCorrect || !attempts[1].IsCorrect {
		t.Errorf("attempts out of order: %+v", attempts)
	}
	if attempts[0].SubmittedAt.After(attempts[1].SubmittedAt) {
		t.Error("attempts not sorted by submission time ascending")
	}
}

func TestHistorySessionWithoutSubmissions(t *testing.T) {
	svc, st := newTestService(t, llm.NewMockProvider())
	sess := createSession(t, st, 5)

	entries, err := svc.History(context.Background(), []string{sess.ID})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	if entries[0].Submissions == nil {
		t.Error("expected empty (non-nil) submissions list")
	}
	if len(entries[0].Submissions) != 0 {
		t.Errorf("submissions = %d, want 0", len(entries[0].Submissions))
	}
}

func TestHistorySkipsUnknownIDs(t *testing.T) {
	svc, st := newTestService(t, llm.NewMockProvider())
	sess := createSession(t, st, 5)

	entries, err := svc.History(context.Background(), []string{sess.ID, "unknown-id"})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
}
