package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathtutor/internal/store"
	"github.com/abhisek/mathtutor/internal/tutor"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SubmitRequest carries a graded attempt. UserAnswer is a pointer so that
// an explicit 0 is distinguishable from a missing field.
type SubmitRequest struct {
	SessionID  string   `json:"session_id" binding:"required"`
	UserAnswer *float64 `json:"user_answer" binding:"required"`
}

// RevealRequest asks for the answer to be revealed.
type RevealRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// HistoryRequest carries the caller's session identifier list.
type HistoryRequest struct {
	SessionIDs []string `json:"session_ids"`
}

type problemResponse struct {
	SessionID   string  `json:"session_id"`
	ProblemText string  `json:"problem_text"`
	FinalAnswer float64 `json:"final_answer"`
}

type sessionResponse struct {
	SessionID   string    `json:"session_id"`
	ProblemText string    `json:"problem_text"`
	FinalAnswer float64   `json:"final_answer"`
	CreatedAt   time.Time `json:"created_at"`
}

type submitResponse struct {
	IsCorrect     bool    `json:"is_correct"`
	Feedback      string  `json:"feedback"`
	CorrectAnswer float64 `json:"correct_answer"`
}

type revealResponse struct {
	IsCorrect     bool    `json:"is_correct"`
	Feedback      string  `json:"feedback"`
	CorrectAnswer float64 `json:"correct_answer"`
	IsRevealed    bool    `json:"is_revealed"`
}

type historyAttempt struct {
	UserAnswer   float64   `json:"user_answer"`
	IsCorrect    bool      `json:"is_correct"`
	FeedbackText string    `json:"feedback_text"`
	SubmittedAt  time.Time `json:"submitted_at"`
	IsRevealed   bool      `json:"is_revealed"`
}

type historyEntry struct {
	SessionID     string           `json:"session_id"`
	ProblemText   string           `json:"problem_text"`
	CorrectAnswer float64          `json:"correct_answer"`
	CreatedAt     time.Time        `json:"created_at"`
	Submissions   []historyAttempt `json:"submissions"`
}

type historyResponse struct {
	History []historyEntry `json:"history"`
}

func (s *Server) generateProblem(c *gin.Context) {
	p, err := s.svc.Generate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, problemResponse{
		SessionID:   p.SessionID,
		ProblemText: p.ProblemText,
		FinalAnswer: p.FinalAnswer,
	})
}

func (s *Server) getProblem(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session ID is required"})
		return
	}

	sess, err := s.svc.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		SessionID:   sess.ID,
		ProblemText: sess.ProblemText,
		FinalAnswer: sess.CorrectAnswer,
		CreatedAt:   sess.CreatedAt,
	})
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session_id and user_answer are required"})
		return
	}

	res, err := s.svc.Submit(c.Request.Context(), req.SessionID, *req.UserAnswer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submitResponse{
		IsCorrect:     res.IsCorrect,
		Feedback:      res.Feedback,
		CorrectAnswer: res.CorrectAnswer,
	})
}

func (s *Server) revealAnswer(c *gin.Context) {
	var req RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session_id is required"})
		return
	}

	res, err := s.svc.Reveal(c.Request.Context(), req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, revealResponse{
		IsCorrect:     res.IsCorrect,
		Feedback:      res.Feedback,
		CorrectAnswer: res.CorrectAnswer,
		IsRevealed:    res.IsRevealed,
	})
}

func (s *Server) history(c *gin.Context) {
	// An absent body counts as an empty identifier set, not an error.
	var req HistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	entries, err := s.svc.History(c.Request.Context(), req.SessionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildHistoryResponse(entries))
}

func buildHistoryResponse(entries []tutor.HistoryEntry) historyResponse {
	out := historyResponse{History: make([]historyEntry, len(entries))}
	for i, e := range entries {
		attempts := make([]historyAttempt, len(e.Submissions))
		for j, a := range e.Submissions {
			attempts[j] = historyAttempt{
				UserAnswer:   a.UserAnswer,
				IsCorrect:    a.IsCorrect,
				FeedbackText: a.Feedback,
				SubmittedAt:  a.SubmittedAt,
				IsRevealed:   a.IsRevealed,
			}
		}
		out.History[i] = historyEntry{
			SessionID:     e.SessionID,
			ProblemText:   e.ProblemText,
			CorrectAnswer: e.CorrectAnswer,
			CreatedAt:     e.CreatedAt,
			Submissions:   attempts,
		}
	}
	return out
}

// respondError maps domain errors to HTTP statuses. Everything that isn't
// a missing session is a server-side failure: LLM unreachable, unusable
// model output, or a store error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
