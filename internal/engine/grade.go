package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/diagnosis"
	"github.com/abhisek/focusloop/internal/events"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/scaffold"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// GradeRequest is one answered question.
type GradeRequest struct {
	// StudentID may be omitted when SessionID names a mission or focus
	// session held by this engine.
	StudentID      string  `json:"student_id"`
	SessionID      string  `json:"session_id"`
	SkillID        string  `json:"skill_id"`
	QuestionText   string  `json:"question_text"`
	StudentAnswer  string  `json:"student_answer"`
	ExpectedAnswer string  `json:"expected_answer,omitempty"`
	TimeSeconds    float64 `json:"time_seconds"`
	HintsUsed      int     `json:"hints_used"`
	// AttemptNumber is the try on this question, starting at 1.
	AttemptNumber int `json:"attempt_number"`
}

// GradeResult is the effect of a graded attempt.
type GradeResult struct {
	Evaluation    *diagnosis.Evaluation `json:"evaluation"`
	MasteryDelta  int                   `json:"mastery_delta"`
	NewMastery    float64               `json:"new_mastery"`
	DecayRate     float64               `json:"decay_rate"`
	Confidence    mastery.Confidence    `json:"confidence"`
	Hint          scaffold.HintLevel    `json:"hint"`
	HintLabel     string                `json:"hint_label"`
	WorkedExample bool                  `json:"worked_example"`
	Intensity     scaffold.Intensity    `json:"intensity"`
	Notes         []mastery.Note        `json:"notes"`
}

// GradeAttempt evaluates an answer, maps the evaluation to a mastery delta
// and applies it through the ledger. Performance tracking, auditing and
// notes follow; their failures are logged and never fail the grade.
func (e *Engine) GradeAttempt(ctx context.Context, req GradeRequest) (res *GradeResult, err error) {
	ctx, span := e.start(ctx, "GradeAttempt",
		attribute.String("session_id", req.SessionID),
		attribute.String("skill_id", req.SkillID),
	)
	defer func() { err = end(span, err) }()

	if err := e.resolveGrade(ctx, &req); err != nil {
		return nil, err
	}
	log := e.log.WithFields(logrus.Fields{
		"student_id": req.StudentID,
		"session_id": req.SessionID,
		"skill_id":   req.SkillID,
	})

	skill, err := e.deps.Ledger.Get(ctx, req.StudentID, req.SkillID)
	if err != nil {
		return nil, err
	}

	eval, err := e.deps.Evaluator.EvaluateAttempt(ctx, diagnosis.EvaluateRequest{
		StudentID:      req.StudentID,
		SkillID:        skill.ID,
		Domain:         skill.Domain,
		Category:       skill.Category,
		QuestionText:   req.QuestionText,
		StudentAnswer:  req.StudentAnswer,
		ExpectedAnswer: req.ExpectedAnswer,
		TimeSecs:       req.TimeSeconds,
		HintsUsed:      req.HintsUsed,
		SkillMastery:   skill.Mastery,
		SkillAccuracy:  skill.Accuracy(),
	})
	if err != nil {
		return nil, err
	}
	if err := eval.Validate(); err != nil {
		return nil, apperr.Internal("evaluator returned an invalid attempt", err)
	}

	// Mapped under the skill lock against the current decay rate.
	attempt := eval.GradedAttempt
	tr, err := e.deps.Ledger.Apply(ctx, req.StudentID, skill.ID, mastery.Update{
		Attempt:         &attempt,
		ResponseSeconds: req.TimeSeconds,
	})
	if err != nil {
		return nil, err
	}
	delta, after := tr.Delta, tr.After
	span.SetAttributes(
		attribute.Int("mastery_delta", delta.MasteryDelta),
		attribute.String("correctness", string(eval.Correctness)),
	)

	recent := e.trackPerformance(ctx, log, req, eval, delta.MasteryDelta, after.Mastery)
	e.recordBandChange(ctx, log, req, tr)
	notes := e.raiseNotes(ctx, log, req, eval, tr.Before.AvgResponseSecs)

	sel := e.deps.Scaffold
	hint := sel.NextHint(req.AttemptNumber, after.Confidence, recent)
	return &GradeResult{
		Evaluation:    eval,
		MasteryDelta:  delta.MasteryDelta,
		NewMastery:    after.Mastery,
		DecayRate:     after.DecayRate,
		Confidence:    after.Confidence,
		Hint:          hint,
		HintLabel:     hint.String(),
		WorkedExample: sel.WorkedExampleEligible(req.AttemptNumber, recent),
		Intensity:     sel.Intensity(after.Mastery, recent),
		Notes:         notes,
	}, nil
}

// resolveGrade validates req and fills the student from the session it
// names when omitted.
func (e *Engine) resolveGrade(ctx context.Context, req *GradeRequest) error {
	if strings.TrimSpace(req.SkillID) == "" {
		return apperr.Invalid("skill id is required")
	}
	if strings.TrimSpace(req.QuestionText) == "" {
		return apperr.Invalid("question text is required")
	}
	if req.TimeSeconds < 0 {
		return apperr.Invalid("time seconds must not be negative, got %v", req.TimeSeconds)
	}
	if req.HintsUsed < 0 {
		return apperr.Invalid("hints used must not be negative, got %d", req.HintsUsed)
	}
	if req.AttemptNumber < 0 {
		return apperr.Invalid("attempt number must not be negative, got %d", req.AttemptNumber)
	}
	if req.AttemptNumber == 0 {
		req.AttemptNumber = 1
	}
	if req.SessionID == "" {
		if req.StudentID == "" {
			return apperr.Invalid("student id or session id is required")
		}
		return nil
	}

	owner, err := e.sessionOwner(ctx, req.SessionID)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrNotFound) && req.StudentID != "":
		// A caller-managed session the engine does not track.
		return nil
	default:
		return err
	}
	if req.StudentID == "" {
		req.StudentID = owner
		return nil
	}
	if req.StudentID != owner {
		return apperr.Invalid("session %s does not belong to student %s", req.SessionID, req.StudentID)
	}
	return nil
}

// sessionOwner returns the student of a mission or focus session.
func (e *Engine) sessionOwner(ctx context.Context, id string) (string, error) {
	e.missionsMu.RLock()
	m, ok := e.missions[id]
	e.missionsMu.RUnlock()
	if ok {
		return m.StudentID, nil
	}
	s, err := e.deps.Orchestrator.Get(ctx, id)
	if err == nil {
		return s.StudentID, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return "", err
	}
	if e.deps.Events != nil {
		rec, err := e.deps.Events.FirstSessionEvent(ctx, id, missionKind)
		if err == nil {
			return rec.StudentID, nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.Unavailable("load mission", err)
		}
	}
	return "", apperr.NotFound("session %s", id)
}

// recordGrade appends the grade event and returns its sequence, or 0 when
// it could not be stored.
func (e *Engine) recordGrade(ctx context.Context, log logrus.FieldLogger, req GradeRequest, eval *diagnosis.Evaluation, delta int, newMastery float64) int64 {
	if e.deps.Events == nil {
		return 0
	}
	seq, err := e.deps.Events.AppendGrade(ctx, store.GradeEventData{
		Timestamp:             e.clk.Now(),
		StudentID:             req.StudentID,
		SessionID:             req.SessionID,
		SkillID:               req.SkillID,
		QuestionText:          req.QuestionText,
		StudentAnswer:         req.StudentAnswer,
		Correctness:           string(eval.Correctness),
		ReasoningQuality:      eval.ReasoningQuality,
		AnswerStyle:           string(eval.AnswerStyle),
		ConfidenceLevel:       string(eval.ConfidenceLevel),
		MisunderstandingLabel: eval.MisunderstandingLabel,
		TimeSecs:              req.TimeSeconds,
		HintsUsed:             req.HintsUsed,
		MasteryDelta:          delta,
		NewMastery:            newMastery,
		Evaluator:             eval.Evaluator,
	})
	if err != nil {
		log.WithError(err).Warn("append grade event failed")
		return 0
	}
	return seq
}

// trackPerformance appends the grade event and folds the answer into the
// student's rolling state, returning the recent answers window. Both happen
// under the student's lock so event order matches fold order.
func (e *Engine) trackPerformance(ctx context.Context, log logrus.FieldLogger, req GradeRequest, eval *diagnosis.Evaluation, delta int, newMastery float64) []mastery.AnswerRecord {
	unlock := e.perfLocks.Lock(req.StudentID)
	defer unlock()

	seq := e.recordGrade(ctx, log, req, eval, delta, newMastery)
	p := e.loadPerformance(ctx, log, req.StudentID)
	// A rebuilt state has already replayed this grade.
	if seq == 0 || seq > p.LastEventSequence {
		p.Record(mastery.AnswerRecord{
			SkillID:   req.SkillID,
			Correct:   eval.Correctness == mastery.Correct,
			HintsUsed: req.HintsUsed,
			TimeSecs:  req.TimeSeconds,
			At:        e.clk.Now(),
		}, newMastery, e.struggle())
		p.LastEventSequence = max(p.LastEventSequence, seq)
	}

	if p.SinceSnapshot >= e.cfg.SnapshotEvery && e.snapshot(ctx, log, p) {
		p.SinceSnapshot = 0
	}
	if err := e.deps.Cache.Put(ctx, p); err != nil {
		log.WithError(err).Warn("cache performance state failed")
	}
	return p.RecentAnswers
}

// loadPerformance reads the cached state, or rebuilds it from the latest
// snapshot plus the grade events recorded after it.
func (e *Engine) loadPerformance(ctx context.Context, log logrus.FieldLogger, studentID string) *mastery.PerformanceState {
	p, err := e.deps.Cache.Get(ctx, studentID)
	if err != nil {
		log.WithError(err).Warn("read performance cache failed")
	}
	if p != nil {
		return p
	}

	p = mastery.NewPerformanceState(studentID, e.cfg.AnswerWindow)
	if e.deps.Snapshots != nil {
		snap, err := e.deps.Snapshots.Latest(ctx, studentID)
		switch {
		case err != nil:
			log.WithError(err).Warn("load performance snapshot failed")
		case snap != nil:
			if restored, err := mastery.RestorePerformance(snap); err != nil {
				log.WithError(err).Warn("decode performance snapshot failed")
			} else {
				p = restored
			}
		}
	}
	if e.deps.Events != nil {
		grades, err := e.deps.Events.GradesAfter(ctx, studentID, p.LastEventSequence, 0)
		if err != nil {
			log.WithError(err).Warn("replay grade events failed")
		} else {
			p.Replay(grades, e.struggle())
		}
	}
	return p
}

// snapshot saves p and prunes old snapshots. It reports whether the
// snapshot was saved.
func (e *Engine) snapshot(ctx context.Context, log logrus.FieldLogger, p *mastery.PerformanceState) bool {
	if e.deps.Snapshots == nil {
		return false
	}
	snap, err := p.Snapshot(e.clk.Now())
	if err != nil {
		log.WithError(err).Warn("encode performance snapshot failed")
		return false
	}
	if err := e.deps.Snapshots.Save(ctx, snap); err != nil {
		log.WithError(err).Warn("save performance snapshot failed")
		return false
	}
	if err := e.deps.Snapshots.Prune(ctx, p.StudentID, e.cfg.SnapshotKeep); err != nil {
		log.WithError(err).Warn("prune performance snapshots failed")
	}
	return true
}

// recordBandChange audits confidence band transitions and announces skills
// crossing the mastery threshold.
func (e *Engine) recordBandChange(ctx context.Context, log logrus.FieldLogger, req GradeRequest, tr mastery.Transition) {
	before, after := tr.Before, tr.After
	if before.Confidence != after.Confidence && e.deps.Events != nil {
		err := e.deps.Events.AppendMastery(ctx, store.MasteryEventData{
			StudentID: req.StudentID,
			SkillID:   after.ID,
			FromBand:  string(before.Confidence),
			ToBand:    string(after.Confidence),
			Mastery:   after.Mastery,
			DecayRate: after.DecayRate,
			SessionID: req.SessionID,
		})
		if err != nil {
			log.WithError(err).Warn("append mastery event failed")
		}
	}
	if before.Mastery < e.cfg.MasteryThreshold && after.Mastery >= e.cfg.MasteryThreshold {
		e.deps.Outbox.Emit(events.Event{
			Kind:      events.KindConceptMastered,
			StudentID: req.StudentID,
			SessionID: req.SessionID,
			SkillID:   after.ID,
			Subtopic:  after.Domain,
			Reason:    "skill mastery reached the threshold",
			At:        e.clk.Now(),
		})
	}
}

// raiseNotes stores behavioral notes best-effort and returns the notes
// raised.
func (e *Engine) raiseNotes(ctx context.Context, log logrus.FieldLogger, req GradeRequest, eval *diagnosis.Evaluation, avgSecs float64) []mastery.Note {
	reasons := mastery.NoteReasons(eval.GradedAttempt, avgSecs, req.TimeSeconds)
	notes := make([]mastery.Note, 0, len(reasons))
	for _, r := range reasons {
		n := mastery.Note{
			ID:        uuid.NewString(),
			StudentID: req.StudentID,
			SkillID:   req.SkillID,
			SessionID: req.SessionID,
			Kind:      r.Kind,
			Detail:    r.Detail,
			CreatedAt: e.clk.Now(),
		}
		notes = append(notes, n)
		e.deps.Outbox.Emit(events.Event{
			Kind:      events.KindNoteRaised,
			StudentID: n.StudentID,
			SessionID: n.SessionID,
			SkillID:   n.SkillID,
			Reason:    n.Detail,
			At:        n.CreatedAt,
		})
		if e.deps.Notes == nil {
			continue
		}
		err := e.deps.Notes.AddNote(ctx, store.NoteRecord{
			ID:        n.ID,
			StudentID: n.StudentID,
			SkillID:   n.SkillID,
			SessionID: n.SessionID,
			Kind:      string(n.Kind),
			Detail:    n.Detail,
			CreatedAt: n.CreatedAt,
		})
		if err != nil {
			log.WithError(err).WithField("kind", n.Kind).Warn("store note failed")
		}
	}
	return notes
}

func (e *Engine) struggle() mastery.StruggleThresholds {
	return e.deps.Scaffold.Config().Struggle
}
