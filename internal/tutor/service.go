package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/problemgen"
	"github.com/abhisek/mathtutor/internal/store"
)

// feedbackMaxTokens caps a single feedback completion; 2-3 sentences fit
// comfortably.
const feedbackMaxTokens = 512

// Service implements the tutoring flows: generate a problem, grade an
// attempt, reveal the answer, and aggregate history. Each operation is a
// linear sequence of at most one LLM call and a few store operations; no
// state is held between requests.
type Service struct {
	sessions  store.SessionRepo
	subs      store.SubmissionRepo
	provider  llm.Provider
	generator *problemgen.Generator
}

// NewService creates a Service over the given repositories and provider.
func NewService(sessions store.SessionRepo, subs store.SubmissionRepo, provider llm.Provider) *Service {
	return &Service{
		sessions:  sessions,
		subs:      subs,
		provider:  provider,
		generator: problemgen.New(provider, problemgen.DefaultConfig()),
	}
}

// Generate produces a new word problem and persists it as a session.
func (s *Service) Generate(ctx context.Context) (*GeneratedProblem, error) {
	p, err := s.generator.Generate(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Create(ctx, p.Text, p.Answer)
	if err != nil {
		return nil, err
	}

	return &GeneratedProblem{
		SessionID:   sess.ID,
		ProblemText: sess.ProblemText,
		FinalAnswer: sess.CorrectAnswer,
	}, nil
}

// Get returns the session with the given ID.
func (s *Service) Get(ctx context.Context, sessionID string) (*store.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// Submit grades an attempt against the session's stored answer, generates
// feedback, and records the submission. Every call records a new
// submission; there is no deduplication and no terminal state.
func (s *Service) Submit(ctx context.Context, sessionID string, userAnswer float64) (*SubmitResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	isCorrect := CheckAnswer(userAnswer, sess.CorrectAnswer)

	feedback, err := s.feedback(ctx, "feedback",
		submitFeedbackPrompt(sess.ProblemText, sess.CorrectAnswer, userAnswer, isCorrect))
	if err != nil {
		return nil, err
	}

	err = s.subs.Create(ctx, &store.Submission{
		SessionID:    sessionID,
		UserAnswer:   userAnswer,
		IsCorrect:    isCorrect,
		FeedbackText: feedback,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		IsCorrect:     isCorrect,
		Feedback:      feedback,
		CorrectAnswer: sess.CorrectAnswer,
	}, nil
}

// Reveal records the session's own correct answer as a submission, marked
// as revealed and always correct, with its own feedback prompt.
func (s *Service) Reveal(ctx context.Context, sessionID string) (*SubmitResult, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	feedback, err := s.feedback(ctx, "reveal-feedback",
		revealFeedbackPrompt(sess.ProblemText, sess.CorrectAnswer))
	if err != nil {
		return nil, err
	}

	err = s.subs.Create(ctx, &store.Submission{
		SessionID:    sessionID,
		UserAnswer:   sess.CorrectAnswer,
		IsCorrect:    true,
		FeedbackText: feedback,
		IsRevealed:   true,
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		IsCorrect:     true,
		Feedback:      feedback,
		CorrectAnswer: sess.CorrectAnswer,
		IsRevealed:    true,
	}, nil
}

// feedback asks the model for a short feedback message.
func (s *Service) feedback(ctx context.Context, purpose, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   feedbackMaxTokens,
		Temperature: 0.6,
	})
	if err != nil {
		return "", fmt.Errorf("feedback generation failed: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
