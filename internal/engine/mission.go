package engine

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/abhisek/focusloop/internal/urgency"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const missionKind = "mission"

// Mission is the answer to "what should this student practice next".
// SessionID identifies the tracking record grades are filed under.
type Mission struct {
	SessionID      string              `json:"session_id"`
	StudentID      string              `json:"student_id"`
	TargetSkill    *mastery.Skill      `json:"target_skill"`
	Difficulty     mastery.Difficulty  `json:"difficulty"`
	QuestionFormat contentgen.Modality `json:"question_format"`
	Urgency        float64             `json:"urgency"`
	OpenedAt       time.Time           `json:"opened_at"`
}

// NextMission ranks the student's skills and opens a mission on the most
// urgent one.
func (e *Engine) NextMission(ctx context.Context, studentID string) (m *Mission, err error) {
	ctx, span := e.start(ctx, "NextMission", attribute.String("student_id", studentID))
	defer func() { err = end(span, err) }()

	skills, err := e.deps.Ledger.Skills(ctx, studentID)
	if err != nil {
		return nil, err
	}
	now := e.clk.Now()
	ranked, err := urgency.SelectNext(skills, now)
	if err != nil {
		return nil, err
	}

	m = &Mission{
		SessionID:      uuid.NewString(),
		StudentID:      studentID,
		TargetSkill:    ranked.Skill,
		Difficulty:     ranked.Difficulty,
		QuestionFormat: questionFormat(ranked.Skill),
		Urgency:        ranked.Urgency,
		OpenedAt:       now,
	}

	e.missionsMu.Lock()
	e.missions[m.SessionID] = m
	e.expireMissions(now)
	e.missionsMu.Unlock()

	e.audit(ctx, store.SessionEventData{
		Timestamp:  now,
		SessionID:  m.SessionID,
		StudentID:  studentID,
		Kind:       missionKind,
		Action:     "opened",
		SkillID:    ranked.Skill.ID,
		Difficulty: string(ranked.Difficulty),
		Detail:     string(m.QuestionFormat),
	})
	span.SetAttributes(
		attribute.String("skill_id", ranked.Skill.ID),
		attribute.String("difficulty", string(ranked.Difficulty)),
	)
	e.log.WithFields(logrus.Fields{
		"student_id": studentID,
		"skill":      ranked.Skill.Domain,
		"urgency":    ranked.Urgency,
	}).Debug("mission opened")
	return m, nil
}

// Mission returns a mission opened by NextMission. Missions no longer held
// in memory are rebuilt from their audit record with the skill's current
// state.
func (e *Engine) Mission(ctx context.Context, id string) (*Mission, error) {
	e.missionsMu.RLock()
	m, ok := e.missions[id]
	e.missionsMu.RUnlock()
	if ok {
		c := *m
		c.TargetSkill = m.TargetSkill.Clone()
		return &c, nil
	}

	if e.deps.Events == nil {
		return nil, apperr.NotFound("mission %s", id)
	}
	rec, err := e.deps.Events.FirstSessionEvent(ctx, id, missionKind)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Unavailable("load mission", err)
	}
	skill, err := e.deps.Ledger.Get(ctx, rec.StudentID, rec.SkillID)
	if err != nil {
		return nil, err
	}
	return &Mission{
		SessionID:      id,
		StudentID:      rec.StudentID,
		TargetSkill:    skill,
		Difficulty:     mastery.Difficulty(rec.Difficulty),
		QuestionFormat: contentgen.Modality(rec.Detail),
		OpenedAt:       rec.Timestamp,
	}, nil
}

// expireMissions drops missions opened more than MissionTTL before now.
// Callers hold missionsMu.
func (e *Engine) expireMissions(now time.Time) {
	cutoff := now.Add(-e.cfg.MissionTTL)
	for id, m := range e.missions {
		if m.OpenedAt.Before(cutoff) {
			delete(e.missions, id)
		}
	}
}

// questionFormat chooses how the mission's questions are posed. Guessers
// and rushers must explain; otherwise the format follows confidence.
func questionFormat(s *mastery.Skill) contentgen.Modality {
	if s.TypicalAnswerStyle.NeedsExplanation() {
		return contentgen.ModalityExplain
	}
	switch s.Confidence {
	case mastery.ConfidenceLow:
		return contentgen.ModalityFlashcards
	case mastery.ConfidenceHigh:
		return contentgen.ModalityMicroGame
	default:
		return contentgen.ModalityQuiz
	}
}

func (e *Engine) audit(ctx context.Context, data store.SessionEventData) {
	if e.deps.Events == nil {
		return
	}
	if err := e.deps.Events.AppendSession(ctx, data); err != nil {
		e.log.WithError(err).WithField("session_id", data.SessionID).Warn("audit session event failed")
	}
}
