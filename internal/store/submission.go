package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtutor/ent"
	"github.com/abhisek/mathtutor/ent/submission"
)

// submissionRepo implements SubmissionRepo using the ent client.
type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) Create(ctx context.Context, sub *Submission) error {
	_, err := r.client.Submission.Create().
		SetSessionID(sub.SessionID).
		SetUserAnswer(sub.UserAnswer).
		SetIsCorrect(sub.IsCorrect).
		SetFeedbackText(sub.FeedbackText).
		SetIsRevealed(sub.IsRevealed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) BySessionIDs(ctx context.Context, ids []string) ([]*Submission, error) {
	rows, err := r.client.Submission.Query().
		Where(submission.SessionIDIn(ids...)).
		Order(ent.Asc(submission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	out := make([]*Submission, len(rows))
	for i, s := range rows {
		out[i] = &Submission{
			SessionID:    s.SessionID,
			UserAnswer:   s.UserAnswer,
			IsCorrect:    s.IsCorrect,
			FeedbackText: s.FeedbackText,
			IsRevealed:   s.IsRevealed,
			CreatedAt:    s.CreatedAt,
		}
	}
	return out, nil
}
