package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtutor/ent"
	"github.com/abhisek/mathtutor/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldTimestamp))

	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]*LLMEvent, len(rows))
	for i, e := range rows {
		out[i] = &LLMEvent{
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
			},
		}
	}
	return out, nil
}
