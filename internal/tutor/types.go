package tutor

import "time"

// GeneratedProblem is the result of generating and persisting a new session.
type GeneratedProblem struct {
	SessionID   string
	ProblemText string
	FinalAnswer float64
}

// SubmitResult is the outcome of grading an attempt (or a reveal).
type SubmitResult struct {
	IsCorrect     bool
	Feedback      string
	CorrectAnswer float64
	IsRevealed    bool
}

// HistoryAttempt is one past submission as shown in the history view.
type HistoryAttempt struct {
	UserAnswer  float64
	IsCorrect   bool
	Feedback    string
	IsRevealed  bool
	SubmittedAt time.Time
}

// HistoryEntry is one session with all its attempts, oldest attempt first.
type HistoryEntry struct {
	SessionID     string
	ProblemText   string
	CorrectAnswer float64
	CreatedAt     time.Time
	Submissions   []HistoryAttempt
}
