package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusloop/ent"
	"github.com/abhisek/focusloop/ent/skill"
)

// skillRepo implements SkillRepo using the ent client.
type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) LoadSkills(ctx context.Context, studentID string) ([]SkillRecord, error) {
	rows, err := r.client.Skill.Query().
		Where(skill.StudentID(studentID)).
		Order(ent.Asc(skill.FieldDomain)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}

	out := make([]SkillRecord, 0, len(rows))
	for _, s := range rows {
		out = append(out, entSkillToRecord(s))
	}
	return out, nil
}

func (r *skillRepo) SaveSkill(ctx context.Context, rec SkillRecord) error {
	_, err := r.client.Skill.UpdateOneID(rec.ID).
		SetCategory(rec.Category).
		SetDisplayName(rec.DisplayName).
		SetMastery(rec.Mastery).
		SetDecayRate(rec.DecayRate).
		SetLastSeen(rec.LastSeen).
		SetTotalAttempts(rec.TotalAttempts).
		SetCorrectAttempts(rec.CorrectAttempts).
		SetTypicalAnswerStyle(rec.TypicalAnswerStyle).
		SetStyleCounts(rec.StyleCounts).
		SetAvgResponseSecs(rec.AvgResponseSecs).
		Save(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("update skill: %w", err)
	}

	_, err = r.client.Skill.Create().
		SetID(rec.ID).
		SetStudentID(rec.StudentID).
		SetDomain(rec.Domain).
		SetCategory(rec.Category).
		SetDisplayName(rec.DisplayName).
		SetMastery(rec.Mastery).
		SetDecayRate(rec.DecayRate).
		SetLastSeen(rec.LastSeen).
		SetTotalAttempts(rec.TotalAttempts).
		SetCorrectAttempts(rec.CorrectAttempts).
		SetTypicalAnswerStyle(rec.TypicalAnswerStyle).
		SetStyleCounts(rec.StyleCounts).
		SetAvgResponseSecs(rec.AvgResponseSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

func entSkillToRecord(s *ent.Skill) SkillRecord {
	return SkillRecord{
		ID:                 s.ID,
		StudentID:          s.StudentID,
		Domain:             s.Domain,
		Category:           s.Category,
		DisplayName:        s.DisplayName,
		Mastery:            s.Mastery,
		DecayRate:          s.DecayRate,
		LastSeen:           s.LastSeen,
		TotalAttempts:      s.TotalAttempts,
		CorrectAttempts:    s.CorrectAttempts,
		TypicalAnswerStyle: s.TypicalAnswerStyle,
		StyleCounts:        s.StyleCounts,
		AvgResponseSecs:    s.AvgResponseSecs,
	}
}
