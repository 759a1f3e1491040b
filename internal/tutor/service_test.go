package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/store"
)

func newTestService(t *testing.T, mock *llm.MockProvider) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return NewService(st.SessionRepo(), st.SubmissionRepo(), mock), st
}

func createSession(t *testing.T, st *store.Store, answer float64) *store.Session {
	t.Helper()
	sess, err := st.SessionRepo().Create(context.Background(),
		"A bag holds 6 red and 8 blue marbles. How many marbles in 3 bags?", answer)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}

func TestGeneratePersistsSession(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `Here you go: {"problem_text":"Mei saves $2.50 a week. How much after 8 weeks?","final_answer":20}`},
	)
	svc, st := newTestService(t, mock)

	got, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.SessionID == "" {
		t.Fatal("expected a session ID")
	}
	if got.FinalAnswer != 20 {
		t.Errorf("final_answer = %v, want 20", got.FinalAnswer)
	}

	// The session must be readable back from the store.
	sess, err := st.SessionRepo().Get(context.Background(), got.SessionID)
	if err != nil {
		t.Fatalf("get persisted session: %v", err)
	}
	if sess.CorrectAnswer != 20 {
		t.Errorf("stored correct_answer = %v, want 20", sess.CorrectAnswer)
	}
}

func TestGenerateParseFailureCreatesNoSession(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "no json here"},
	)
	svc, st := newTestService(t, mock)

	_, err := svc.Generate(context.Background())
	if err == nil {
		t.Fatal("expected parse error")
	}

	sessions, err := st.SessionRepo().ByIDs(context.Background(), []string{})
	if err != nil {
		t.Fatalf("by ids: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions persisted, got %d", len(sessions))
	}
}

func TestSubmitCorrectWithinTolerance(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "  Great job! You multiplied correctly.  "},
	)
	svc, st := newTestService(t, mock)
	sess := createSession(t, st, 42)

	res, err := svc.Submit(context.Background(), sess.ID, 42.005)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.IsCorrect {
		t.Error("expected is_correct=true for answer within tolerance")
	}
	if res.IsRevealed {
		t.Error("expected is_revealed=false for a normal submission")
	}
	if res.CorrectAnswer != 42 {
		t.Errorf("correct_answer = %v, want 42", res.CorrectAnswer)
	}
	if res.Feedback != "Great job! You multiplied correctly." {
		t.Errorf("feedback not trimmed: %q", res.Feedback)
	}
}

func TestSubmitIncorrectOutsideTolerance(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Not quite. Check your multiplication step."},
	)
	svc, st := newTestService(t, mock)
	sess := createSession(t, st, 42)

	res, err := svc.Submit(context.Background(), sess.ID, 42.02)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.IsCorrect {
		t.Error("expected is_correct=false for answer outside tolerance")
	}

	// The verdict must be reflected in the prompt sent to the model.
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "INCORRECT") {
		t.Errorf("feedback prompt missing verdict: %q", prompt)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, st := newTestService(t, mock)

	_, err := svc.Submit(context.Background(), "no-such-session", 1)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if mock.CallCount() != 0 {
		t.Error("expected no LLM call for unknown session")
	}

	subs, err := st.SubmissionRepo().BySessionIDs(context.Background(), []string{"no-such-session"})
	if err != nil {
		t.Fatalf("by session ids: %v", err)
	}
	if len(subs) != 0 {
		t.Error("expected no submission persisted for unknown session")
	}
}

func TestSubmitLLMFailureCreatesNoSubmission(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc, st := newTestService(t, mock)
	sess := createSession(t, st, 42)

	_, err := svc.Submit(context.Background(), sess.ID, 42)
	if err == nil {
		t.Fatal("expected error when feedback generation fails")
	}

	subs, err := st.SubmissionRepo().BySessionIDs(context.Background(), []string{sess.ID})
	if err != nil {
		t.Fatalf("by session ids: %v", err)
	}
	if len(subs) != 0 {
		t.Error("expected no submission persisted after LLM failure")
	}
}

func TestRepeatedSubmitsEachPersist(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "try again"},
		llm.MockResponse{Text: "well done"},
	)
	svc, st := newTestService(t, mock)
	sess := createSession(t, st, 42)

	if _, err := svc.Submit(context.Background(), sess.ID, 40); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), sess.ID, 42); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	subs, err := st.SubmissionRepo().BySessionIDs(context.Background(), []string{sess.ID})
	if err != nil {
		t.Fatalf("by session ids: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("len = %d, want 2 (no deduplication)", len(subs))
	}
	if subs[0].IsCorrect || !subs[1].IsCorrect {
		t.Errorf("submissions out of order: %+v", subs)
	}
}

func TestRevealRecordsCorrectAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "No problem! The answer is 42 because..."},
	)
	svc, st := newTestService(t, mock)
	sess := createSession(t, st, 42)

	res, err := svc.Reveal(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if !res.IsCorrect || !res.IsRevealed {
		t.Errorf("result = %+v, want is_correct and is_revealed", res)
	}
	if res.CorrectAnswer != 42 {
		t.Errorf("correct_answer = %v, want 42", res.CorrectAnswer)
	}

	subs, err := st.SubmissionRepo().BySessionIDs(context.Background(), []string{sess.ID})
	if err != nil {
		t.Fatalf("by session ids: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("len = %d, want 1", len(subs))
	}
	sub := subs[0]
	if sub.UserAnswer != 42 || !sub.IsCorrect || !sub.IsRevealed {
		t.Errorf("persisted submission = %+v, want user_answer=42 is_correct is_revealed", sub)
	}
}

func TestRevealAfterSubmissionsStillWorks(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "keep trying"},
		llm.MockResponse{Text: "here is the answer"},
	)
	svc, st := newTestService(t, mock)
	sess := createSession(t, st, 10)

	if _, err := svc.Submit(context.Background(), sess.ID, 3); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Reveal(context.Background(), sess.ID); err != nil {
		t.Fatalf("reveal: %v", err)
	}

	subs, err := st.SubmissionRepo().BySessionIDs(context.Background(), []string{sess.ID})
	if err != nil {
		t.Fatalf("by session ids: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("len = %d, want 2", len(subs))
	}
	if !subs[1].IsRevealed {
		t.Error("expected second submission to be the reveal")
	}
}

func TestRevealUnknownSession(t *testing.T) {
	mock := llm.NewMockProvider()
	svc, _ := newTestService(t, mock)

	_, err := svc.Reveal(context.Background(), "no-such-session")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
