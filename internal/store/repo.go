package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested session does not exist.
var ErrNotFound = errors.New("not found")

// Session is one generated problem and its canonical correct answer.
type Session struct {
	ID            string
	ProblemText   string
	CorrectAnswer float64
	CreatedAt     time.Time
}

// Submission is one recorded attempt (or reveal) against a Session.
type Submission struct {
	SessionID    string
	UserAnswer   float64
	IsCorrect    bool
	FeedbackText string
	IsRevealed   bool
	CreatedAt    time.Time
}

// SessionRepo manages problem sessions. Sessions are write-once: the store
// generates the identifier at creation time and rows are never updated.
type SessionRepo interface {
	// Create persists a new session and returns it with its generated ID.
	Create(ctx context.Context, problemText string, correctAnswer float64) (*Session, error)

	// Get returns the session with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// ByIDs returns the sessions matching the given IDs, newest first.
	// Unknown IDs are silently skipped.
	ByIDs(ctx context.Context, ids []string) ([]*Session, error)
}

// SubmissionRepo manages answer submissions.
type SubmissionRepo interface {
	// Create persists a new submission. The referenced session must exist.
	Create(ctx context.Context, sub *Submission) error

	// BySessionIDs returns all submissions whose session is in the given
	// set, oldest first.
	BySessionIDs(ctx context.Context, ids []string) ([]*Submission, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a recorded LLM API call.
type LLMEvent struct {
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// EventRepo records LLM API calls.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)
}
