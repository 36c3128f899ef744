package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetStudentID(data.StudentID).
		SetSkillID(data.SkillID).
		SetFromBand(data.FromBand).
		SetToBand(data.ToBand).
		SetMastery(data.Mastery).
		SetDecayRate(data.DecayRate)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}
