package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusloop/ent"
	"github.com/abhisek/focusloop/ent/sessionevent"
	"github.com/abhisek/focusloop/internal/apperr"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetKind(data.Kind).
		SetAction(data.Action).
		SetLoopNumber(data.LoopNumber).
		SetAccuracy(data.Accuracy).
		SetDetail(data.Detail)

	if data.SkillID != "" {
		builder = builder.SetSkillID(data.SkillID)
	}
	if data.Difficulty != "" {
		builder = builder.SetDifficulty(data.Difficulty)
	}
	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) FirstSessionEvent(ctx context.Context, sessionID, kind string) (*SessionEventData, error) {
	e, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID), sessionevent.Kind(kind)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperr.NotFound("%s %s", kind, sessionID)
		}
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return &SessionEventData{
		Sequence:   e.Sequence,
		Timestamp:  e.Timestamp,
		SessionID:  e.SessionID,
		StudentID:  e.StudentID,
		Kind:       e.Kind,
		Action:     e.Action,
		SkillID:    e.SkillID,
		Difficulty: e.Difficulty,
		LoopNumber: e.LoopNumber,
		Accuracy:   e.Accuracy,
		Detail:     e.Detail,
	}, nil
}
