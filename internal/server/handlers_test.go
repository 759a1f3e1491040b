package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/store"
	"github.com/abhisek/mathtutor/internal/tutor"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, mock *llm.MockProvider) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	svc := tutor.NewService(st.SessionRepo(), st.SubmissionRepo(), mock)
	return New(svc), st
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var out map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func TestGenerateProblem(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `{"problem_text":"A rope is 4.5 m long. It is cut into 3 equal pieces. How long is each piece?","final_answer":1.5}`},
	)
	srv, _ := newTestServer(t, mock)

	w, body := doJSON(t, srv.Handler(), http.MethodPost, "/problem", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if body["session_id"] == "" || body["session_id"] == nil {
		t.Error("expected session_id in response")
	}
	if body["final_answer"] != 1.5 {
		t.Errorf("final_answer = %v, want 1.5", body["final_answer"])
	}
	if body["problem_text"] == "" {
		t.Error("expected problem_text in response")
	}
}

func TestGenerateProblemParseFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "I'd rather talk about the weather."},
	)
	srv, _ := newTestServer(t, mock)

	w, body := doJSON(t, srv.Handler(), http.MethodPost, "/problem", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body["error"] == nil {
		t.Error("expected error body")
	}
}

func TestGetProblem(t *testing.T) {
	srv, st := newTestServer(t, llm.NewMockProvider())
	sess, err := st.SessionRepo().Create(t.Context(), "What is 6 x 7?", 42)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	w, body := doJSON(t, srv.Handler(), http.MethodGet, "/problem/"+sess.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if body["session_id"] != sess.ID {
		t.Errorf("session_id = %v, want %s", body["session_id"], sess.ID)
	}
	if body["final_answer"] != 42.0 {
		t.Errorf("final_answer = %v, want 42", body["final_answer"])
	}
	if body["created_at"] == nil {
		t.Error("expected created_at in response")
	}
}

func TestGetProblemNotFound(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())

	w, _ := doJSON(t, srv.Handler(), http.MethodGet, "/problem/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSubmitToleranceScenario(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Well done!"},
		llm.MockResponse{Text: "So close, check your rounding."},
	)
	srv, st := newTestServer(t, mock)
	sess, err := st.SessionRepo().Create(t.Context(), "problem", 42)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	// 42.005 is within tolerance.
	w, body := doJSON(t, srv.Handler(), http.MethodPost, "/problem/submit",
		map[string]any{"session_id": sess.ID, "user_answer": 42.005})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if body["is_correct"] != true {
		t.Errorf("is_correct = %v, want true for 42.005", body["is_correct"])
	}
	if body["correct_answer"] != 42.0 {
		t.Errorf("correct_answer = %v, want 42", body["correct_answer"])
	}
	if body["feedback"] != "Well done!" {
		t.Errorf("feedback = %v", body["feedback"])
	}

	// 42.02 is outside tolerance.
	_, body = doJSON(t, srv.Handler(), http.MethodPost, "/problem/submit",
		map[string]any{"session_id": sess.ID, "user_answer": 42.02})
	if body["is_correct"] != false {
		t.Errorf("is_correct = %v, want false for 42.02", body["is_correct"])
	}
}

func TestSubmitMissingFields(t *testing.T) {
	srv, st := newTestServer(t, llm.NewMockProvider())
	sess, err := st.SessionRepo().Create(t.Context(), "problem", 42)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing user_answer", map[string]any{"session_id": sess.ID}},
		{"missing session_id", map[string]any{"user_answer": 42.0}},
		{"empty body", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doJSON(t, srv.Handler(), http.MethodPost, "/problem/submit", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}

	// No submission may have been created by the rejected requests.
	subs, err := st.SubmissionRepo().BySessionIDs(t.Context(), []string{sess.ID})
	if err != nil {
		t.Fatalf("by session ids: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("expected 0 submissions, got %d", len(subs))
	}
}

func TestSubmitZeroAnswerIsNotMissing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Spot on!"})
	srv, st := newTestServer(t, mock)
	sess, err := st.SessionRepo().Create(t.Context(), "What is 5 - 5?", 0)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	w, body := doJSON(t, srv.Handler(), http.MethodPost, "/problem/submit",
		map[string]any{"session_id": sess.ID, "user_answer": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if body["is_correct"] != true {
		t.Errorf("is_correct = %v, want true for exact zero", body["is_correct"])
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())

	w, _ := doJSON(t, srv.Handler(), http.MethodPost, "/problem/submit",
		map[string]any{"session_id": "nope", "user_answer": 1.0})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRevealFlow(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "The answer is 42. Here's why..."},
	)
	srv, st := newTestServer(t, mock)
	sess, err := st.SessionRepo().Create(t.Context(), "problem", 42)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	w, body := doJSON(t, srv.Handler(), http.MethodPost, "/problem/reveal",
		map[string]any{"session_id": sess.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if body["is_correct"] != true || body["is_revealed"] != true {
		t.Errorf("body = %v, want is_correct and is_revealed", body)
	}

	// History for that session shows exactly one revealed, correct attempt.
	_, hist := doJSON(t, srv.Handler(), http.MethodPost, "/problem/history",
		map[string]any{"session_ids": []string{sess.ID}})
	entries := hist["history"].([]any)
	if len(entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(entries))
	}
	subs := entries[0].(map[string]any)["submissions"].([]any)
	if len(subs) != 1 {
		t.Fatalf("submissions = %d, want 1", len(subs))
	}
	sub := subs[0].(map[string]any)
	if sub["is_revealed"] != true || sub["is_correct"] != true {
		t.Errorf("submission = %v", sub)
	}
	if sub["user_answer"] != 42.0 {
		t.Errorf("user_answer = %v, want 42", sub["user_answer"])
	}
}

func TestRevealMissingSessionID(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())

	w, _ := doJSON(t, srv.Handler(), http.MethodPost, "/problem/reveal", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHistoryEmptyInput(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())

	tests := []struct {
		name string
		body any
	}{
		{"no body", nil},
		{"empty object", map[string]any{}},
		{"empty list", map[string]any{"session_ids": []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doJSON(t, srv.Handler(), http.MethodPost, "/problem/history", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
			}
			hist, ok := body["history"].([]any)
			if !ok {
				t.Fatalf("body = %v, want history list", body)
			}
			if len(hist) != 0 {
				t.Errorf("history = %d entries, want 0", len(hist))
			}
		})
	}
}

func TestHistoryTwoSubmissionsBothPersist(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "good"},
		llm.MockResponse{Text: "try again"},
	)
	srv, st := newTestServer(t, mock)
	sess, err := st.SessionRepo().Create(t.Context(), "problem", 10)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	// One correct, then one incorrect.
	for _, answer := range []float64{10, 3} {
		w, _ := doJSON(t, srv.Handler(), http.MethodPost, "/problem/submit",
			map[string]any{"session_id": sess.ID, "user_answer": answer})
		if w.Code != http.StatusOK {
			t.Fatalf("submit %v: status %d", answer, w.Code)
		}
	}

	_, hist := doJSON(t, srv.Handler(), http.MethodPost, "/problem/history",
		map[string]any{"session_ids": []string{sess.ID}})
	entries := hist["history"].([]any)
	if len(entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(entries))
	}
	subs := entries[0].(map[string]any)["submissions"].([]any)
	if len(subs) != 2 {
		t.Fatalf("submissions = %d, want 2", len(subs))
	}
	first := subs[0].(map[string]any)
	second := subs[1].(map[string]any)
	if first["is_correct"] != true || second["is_correct"] != false {
		t.Errorf("submissions out of order: %v then %v", first, second)
	}
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestUIPagesServed(t *testing.T) {
	srv, _ := newTestServer(t, llm.NewMockProvider())

	for _, path := range []string{"/", "/history"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", path, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("GET %s: content-type = %q", path, ct)
		}
	}
}
