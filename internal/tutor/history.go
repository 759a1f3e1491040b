package tutor

import (
	"context"
)

// History returns the given sessions joined with all their submissions.
// Sessions come back newest first; each session's attempts oldest first.
// An empty ID set short-circuits to an empty result with no store access.
// The ID set is the caller's capability list; no ownership is verified.
func (s *Service) History(ctx context.Context, sessionIDs []string) ([]HistoryEntry, error) {
	if len(sessionIDs) == 0 {
		return []HistoryEntry{}, nil
	}

	sessions, err := s.sessions.ByIDs(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	subs, err := s.subs.BySessionIDs(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	// Group submissions by session; the store already returns them sorted
	// by submission time ascending.
	bySession := make(map[string][]HistoryAttempt, len(sessions))
	for _, sub := range subs {
		bySession[sub.SessionID] = append(bySession[sub.SessionID], HistoryAttempt{
			UserAnswer:  sub.UserAnswer,
			IsCorrect:   sub.IsCorrect,
			Feedback:    sub.FeedbackText,
			IsRevealed:  sub.IsRevealed,
			SubmittedAt: sub.CreatedAt,
		})
	}

	entries := make([]HistoryEntry, len(sessions))
	for i, sess := range sessions {
		attempts := bySession[sess.ID]
		if attempts == nil {
			attempts = []HistoryAttempt{}
		}
		entries[i] = HistoryEntry{
			SessionID:     sess.ID,
			ProblemText:   sess.ProblemText,
			CorrectAnswer: sess.CorrectAnswer,
			CreatedAt:     sess.CreatedAt,
			Submissions:   attempts,
		}
	}

	return entries, nil
}
