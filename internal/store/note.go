package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusloop/ent"
	"github.com/abhisek/focusloop/ent/note"
)

// noteRepo implements NoteRepo using the ent client.
type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) AddNote(ctx context.Context, rec NoteRecord) error {
	builder := r.client.Note.Create().
		SetID(rec.ID).
		SetStudentID(rec.StudentID).
		SetSkillID(rec.SkillID).
		SetKind(rec.Kind).
		SetDetail(rec.Detail)
	if rec.SessionID != "" {
		builder = builder.SetSessionID(rec.SessionID)
	}
	if !rec.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(rec.CreatedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

func (r *noteRepo) ListNotes(ctx context.Context, studentID string, limit int) ([]NoteRecord, error) {
	q := r.client.Note.Query().
		Where(note.StudentID(studentID)).
		Order(ent.Desc(note.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}

	out := make([]NoteRecord, 0, len(rows))
	for _, n := range rows {
		out = append(out, NoteRecord{
			ID:        n.ID,
			StudentID: n.StudentID,
			SkillID:   n.SkillID,
			SessionID: n.SessionID,
			Kind:      n.Kind,
			Detail:    n.Detail,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}
