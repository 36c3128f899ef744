package engine

import (
	"context"
	"strings"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/session"
	"go.opentelemetry.io/otel/attribute"
)

// SessionSummary is the outcome of a completed focus session.
type SessionSummary struct {
	Session     *session.Session            `json:"session"`
	Performance *session.SessionPerformance `json:"performance"`
	ReviewPlan  *session.ReviewPlan         `json:"review_plan"`
}

// StartFocusSession opens a focus session for the student.
func (e *Engine) StartFocusSession(ctx context.Context, req session.StartRequest) (s *session.Session, err error) {
	ctx, span := e.start(ctx, "StartFocusSession",
		attribute.String("student_id", req.StudentID),
		attribute.String("topic", req.Topic),
	)
	defer func() { err = end(span, err) }()

	s, err = e.deps.Orchestrator.Start(ctx, req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("session_id", s.ID))
	return s, nil
}

// StartLoop generates content for loop n of a session.
func (e *Engine) StartLoop(ctx context.Context, sessionID string, n int) (l *session.Loop, err error) {
	ctx, span := e.start(ctx, "StartLoop", attribute.String("session_id", sessionID), attribute.Int("loop", n))
	defer func() { err = end(span, err) }()
	return e.deps.Orchestrator.StartLoop(ctx, sessionID, n)
}

// RecordLoopResults attaches the learner's item results to loop n.
func (e *Engine) RecordLoopResults(ctx context.Context, sessionID string, n int, results []session.ItemResult) (l *session.Loop, err error) {
	ctx, span := e.start(ctx, "RecordLoopResults",
		attribute.String("session_id", sessionID),
		attribute.Int("loop", n),
		attribute.Int("results", len(results)),
	)
	defer func() { err = end(span, err) }()
	return e.deps.Orchestrator.RecordResults(ctx, sessionID, n, results)
}

// CompleteLoop grades loop n and adapts the session difficulty.
func (e *Engine) CompleteLoop(ctx context.Context, sessionID string, n int) (perf *session.LoopPerformance, err error) {
	ctx, span := e.start(ctx, "CompleteLoop", attribute.String("session_id", sessionID), attribute.Int("loop", n))
	defer func() { err = end(span, err) }()

	perf, err = e.deps.Orchestrator.CompleteLoop(ctx, sessionID, n)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Float64("accuracy", perf.Accuracy),
		attribute.Float64("frustration", perf.FrustrationLevel),
	)
	return perf, nil
}

// CompleteFocusSession closes a session and returns its summary.
func (e *Engine) CompleteFocusSession(ctx context.Context, sessionID string) (sum *SessionSummary, err error) {
	ctx, span := e.start(ctx, "CompleteFocusSession", attribute.String("session_id", sessionID))
	defer func() { err = end(span, err) }()

	s, perf, err := e.deps.Orchestrator.Complete(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionSummary{Session: s, Performance: perf, ReviewPlan: s.ReviewPlan}, nil
}

// CancelFocusSession abandons a session.
func (e *Engine) CancelFocusSession(ctx context.Context, sessionID, reason string) (s *session.Session, err error) {
	ctx, span := e.start(ctx, "CancelFocusSession", attribute.String("session_id", sessionID))
	defer func() { err = end(span, err) }()
	return e.deps.Orchestrator.Cancel(ctx, sessionID, reason)
}

// FocusSession returns a copy of a session.
func (e *Engine) FocusSession(ctx context.Context, sessionID string) (*session.Session, error) {
	return e.deps.Orchestrator.Get(ctx, sessionID)
}

// LoopBudget reports the time left for the session's remaining loops.
func (e *Engine) LoopBudget(ctx context.Context, sessionID string) (session.LoopBudget, error) {
	return e.deps.Orchestrator.LoopBudget(ctx, sessionID)
}

// SeedCurriculum creates the student's skills for every curriculum entry
// that does not exist yet. Existing skills are left untouched.
func (e *Engine) SeedCurriculum(ctx context.Context, studentID string) (skills []*mastery.Skill, err error) {
	ctx, span := e.start(ctx, "SeedCurriculum", attribute.String("student_id", studentID))
	defer func() { err = end(span, err) }()

	skills, err = e.deps.Ledger.Seed(ctx, studentID, e.deps.Curriculum.Seeds())
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("skills", len(skills)))
	return skills, nil
}

// Skills returns the student's skills ordered by domain.
func (e *Engine) Skills(ctx context.Context, studentID string) ([]*mastery.Skill, error) {
	return e.deps.Ledger.Skills(ctx, studentID)
}

// Notes returns the student's behavioral notes, newest first.
func (e *Engine) Notes(ctx context.Context, studentID string, limit int) ([]mastery.Note, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperr.Invalid("student id is required")
	}
	if e.deps.Notes == nil {
		return []mastery.Note{}, nil
	}
	recs, err := e.deps.Notes.ListNotes(ctx, studentID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]mastery.Note, len(recs))
	for i, r := range recs {
		out[i] = mastery.Note{
			ID:        r.ID,
			StudentID: r.StudentID,
			SkillID:   r.SkillID,
			SessionID: r.SessionID,
			Kind:      mastery.NoteKind(r.Kind),
			Detail:    r.Detail,
			CreatedAt: r.CreatedAt,
		}
	}
	return out, nil
}
