package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusloop/ent"
	"github.com/abhisek/focusloop/ent/llmrequestevent"
	"github.com/abhisek/focusloop/ent/predicate"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEventData, error) {
	var preds []predicate.LLMRequestEvent
	if opts.After > 0 {
		preds = append(preds, llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Purpose != "" {
		preds = append(preds, llmrequestevent.Purpose(opts.Purpose))
	}

	q := r.client.LLMRequestEvent.Query().
		Where(preds...).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEventData, 0, len(rows))
	for _, e := range rows {
		out = append(out, LLMRequestEventData{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		})
	}
	return out, nil
}
