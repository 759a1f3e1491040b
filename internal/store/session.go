package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtutor/ent"
	"github.com/abhisek/mathtutor/ent/problemsession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, problemText string, correctAnswer float64) (*Session, error) {
	ps, err := r.client.ProblemSession.Create().
		SetProblemText(problemText).
		SetCorrectAnswer(correctAnswer).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return entToSession(ps), nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	ps, err := r.client.ProblemSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return entToSession(ps), nil
}

func (r *sessionRepo) ByIDs(ctx context.Context, ids []string) ([]*Session, error) {
	rows, err := r.client.ProblemSession.Query().
		Where(problemsession.IDIn(ids...)).
		Order(ent.Desc(problemsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]*Session, len(rows))
	for i, ps := range rows {
		out[i] = entToSession(ps)
	}
	return out, nil
}

func entToSession(ps *ent.ProblemSession) *Session {
	return &Session{
		ID:            ps.ID,
		ProblemText:   ps.ProblemText,
		CorrectAnswer: ps.CorrectAnswer,
		CreatedAt:     ps.CreatedAt,
	}
}
