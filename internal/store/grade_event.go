package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusloop/ent"
	"github.com/abhisek/focusloop/ent/gradeevent"
)

func (r *eventRepo) AppendGrade(ctx context.Context, data GradeEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.GradeEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetSkillID(data.SkillID).
		SetQuestionText(data.QuestionText).
		SetStudentAnswer(data.StudentAnswer).
		SetCorrectness(data.Correctness).
		SetReasoningQuality(data.ReasoningQuality).
		SetAnswerStyle(data.AnswerStyle).
		SetConfidenceLevel(data.ConfidenceLevel).
		SetTimeSecs(data.TimeSecs).
		SetHintsUsed(data.HintsUsed).
		SetMasteryDelta(data.MasteryDelta).
		SetNewMastery(data.NewMastery).
		SetEvaluator(data.Evaluator)
	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}
	if data.MisunderstandingLabel != "" {
		builder = builder.SetMisunderstandingLabel(data.MisunderstandingLabel)
	}
	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save grade event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) GradesAfter(ctx context.Context, studentID string, after int64, limit int) ([]GradeEventData, error) {
	q := r.client.GradeEvent.Query().
		Where(
			gradeevent.StudentID(studentID),
			gradeevent.SequenceGT(after),
		).
		Order(ent.Asc(gradeevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade events: %w", err)
	}

	out := make([]GradeEventData, 0, len(rows))
	for _, e := range rows {
		out = append(out, GradeEventData{
			Sequence:              e.Sequence,
			Timestamp:             e.Timestamp,
			StudentID:             e.StudentID,
			SessionID:             e.SessionID,
			SkillID:               e.SkillID,
			QuestionText:          e.QuestionText,
			StudentAnswer:         e.StudentAnswer,
			Correctness:           e.Correctness,
			ReasoningQuality:      e.ReasoningQuality,
			AnswerStyle:           e.AnswerStyle,
			ConfidenceLevel:       e.ConfidenceLevel,
			MisunderstandingLabel: e.MisunderstandingLabel,
			TimeSecs:              e.TimeSecs,
			HintsUsed:             e.HintsUsed,
			MasteryDelta:          e.MasteryDelta,
			NewMastery:            e.NewMastery,
			Evaluator:             e.Evaluator,
		})
	}
	return out, nil
}
