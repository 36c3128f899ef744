package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusloop/ent"
	"github.com/abhisek/focusloop/ent/focussession"
	"github.com/abhisek/focusloop/internal/apperr"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) LoadSession(ctx context.Context, id string) (*SessionRecord, error) {
	s, err := r.client.FocusSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperr.NotFound("session %q", id)
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	rec := entSessionToRecord(s)
	return &rec, nil
}

func (r *sessionRepo) SaveSession(ctx context.Context, rec SessionRecord) error {
	_, err := r.client.FocusSession.UpdateOneID(rec.ID).
		SetTopic(rec.Topic).
		SetStatus(rec.Status).
		SetStartedAt(rec.StartedAt).
		SetNillableEndedAt(rec.EndedAt).
		SetDocument(rec.Document).
		Save(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("update session: %w", err)
	}

	_, err = r.client.FocusSession.Create().
		SetID(rec.ID).
		SetStudentID(rec.StudentID).
		SetTopic(rec.Topic).
		SetStatus(rec.Status).
		SetStartedAt(rec.StartedAt).
		SetNillableEndedAt(rec.EndedAt).
		SetDocument(rec.Document).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) OpenSessions(ctx context.Context) ([]SessionRecord, error) {
	rows, err := r.client.FocusSession.Query().
		Where(focussession.StatusIn("planning", "active")).
		Order(ent.Asc(focussession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query open sessions: %w", err)
	}
	out := make([]SessionRecord, 0, len(rows))
	for _, s := range rows {
		out = append(out, entSessionToRecord(s))
	}
	return out, nil
}

func entSessionToRecord(s *ent.FocusSession) SessionRecord {
	return SessionRecord{
		ID:        s.ID,
		StudentID: s.StudentID,
		Topic:     s.Topic,
		Status:    s.Status,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
		Document:  s.Document,
	}
}
