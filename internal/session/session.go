package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/events"
	"github.com/abhisek/focusloop/internal/keylock"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StartRequest opens a focus session.
type StartRequest struct {
	StudentID             string
	Topic                 string
	TargetDurationSeconds int
	// InitialDifficulty defaults to easy.
	InitialDifficulty mastery.Difficulty
	// Modality defaults to quiz.
	Modality contentgen.Modality
}

// Deps are the orchestrator's collaborators. Repo, Generator and Planner
// are required.
type Deps struct {
	Repo      store.SessionRepo
	Generator contentgen.Generator
	Planner   ReviewPlanner
	Profile   LearnerProfile // optional
	Recorder  Recorder       // optional
	Events    events.Sink    // optional
	Clock     clock.Clock
	Log       logrus.FieldLogger
}

// Orchestrator owns the session state machine. Operations on one session
// are serialized; different sessions proceed in parallel.
type Orchestrator struct {
	deps  Deps
	cfg   Config
	clk   clock.Clock
	log   logrus.FieldLogger
	locks *keylock.Set

	mu       sync.RWMutex
	sessions map[string]*Session
	// active maps a student to their non-terminal session.
	active map[string]string
	// ended holds the end time of terminal sessions still in memory.
	ended map[string]time.Time
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(deps Deps, cfg Config) *Orchestrator {
	clk := deps.Clock
	if clk == nil {
		clk = clock.System{}
	}
	log := deps.Log
	if log == nil {
		log = logging.Discard()
	}
	return &Orchestrator{
		deps:     deps,
		cfg:      cfg.withDefaults(),
		clk:      clk,
		log:      log,
		locks:    keylock.New(),
		sessions: make(map[string]*Session),
		active:   make(map[string]string),
		ended:    make(map[string]time.Time),
	}
}

// Config returns the effective configuration.
func (o *Orchestrator) Config() Config { return o.cfg }

// Start opens a session for a student with no other open session, builds
// its concept map and makes it active.
func (o *Orchestrator) Start(ctx context.Context, req StartRequest) (*Session, error) {
	if err := o.validateStart(&req); err != nil {
		return nil, err
	}

	now := o.clk.Now()
	s := &Session{
		ID:                    uuid.NewString(),
		StudentID:             req.StudentID,
		Topic:                 req.Topic,
		Modality:              req.Modality,
		Status:                StatusPlanning,
		StartTime:             now,
		TargetDurationSeconds: req.TargetDurationSeconds,
		InitialDifficulty:     req.InitialDifficulty,
		CurrentDifficulty:     req.InitialDifficulty,
		SubtopicMastery:       map[string]float64{},
		Loops:                 []*Loop{},
	}

	unlock := o.locks.Lock(s.ID)
	defer unlock()

	o.mu.Lock()
	if id, ok := o.active[req.StudentID]; ok {
		o.mu.Unlock()
		return nil, fmt.Errorf("%w: student %s has session %s", apperr.ErrSessionAlreadyActive, req.StudentID, id)
	}
	o.active[req.StudentID] = s.ID
	o.sessions[s.ID] = s
	o.mu.Unlock()

	cm, err := o.deps.Generator.BuildConceptMap(ctx, req.Topic)
	if err != nil {
		o.forget(s)
		return nil, fmt.Errorf("build concept map: %w", err)
	}
	s.ConceptMap = cm
	s.Status = StatusActive

	o.persist(ctx, s)
	o.record(ctx, s, "started", 0, 0, fmt.Sprintf("%d subtopics", len(cm.Subtopics)))
	o.logger(s).WithField("topic", s.Topic).Info("focus session started")
	return s.Clone(), nil
}

func (o *Orchestrator) validateStart(req *StartRequest) error {
	if strings.TrimSpace(req.StudentID) == "" {
		return apperr.Invalid("student id is required")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return apperr.Invalid("topic is required")
	}
	if req.TargetDurationSeconds < 0 {
		return apperr.Invalid("target duration must not be negative, got %d", req.TargetDurationSeconds)
	}
	if req.TargetDurationSeconds == 0 {
		req.TargetDurationSeconds = o.cfg.DefaultDurationSeconds
	}
	if req.InitialDifficulty == "" {
		req.InitialDifficulty = mastery.DifficultyEasy
	}
	if req.InitialDifficulty.Index() < 0 {
		return apperr.Invalid("unknown difficulty %q", req.InitialDifficulty)
	}
	m, err := contentgen.ParseModality(string(req.Modality))
	if err != nil {
		return err
	}
	req.Modality = m
	return nil
}

// StartLoop opens loop n. Loops run in order, each after the previous one
// is sealed, up to the configured maximum.
func (o *Orchestrator) StartLoop(ctx context.Context, id string, n int) (*Loop, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	s, err := o.live(id)
	if err != nil {
		return nil, err
	}
	if err := o.requireActive(s); err != nil {
		return nil, err
	}
	if n != len(s.Loops)+1 {
		return nil, fmt.Errorf("%w: requested loop %d, next is %d", apperr.ErrInvalidLoopSequence, n, len(s.Loops)+1)
	}
	if last := s.lastLoop(); last != nil && !last.Sealed {
		return nil, fmt.Errorf("%w: loop %d is not sealed", apperr.ErrInvalidLoopSequence, last.Number)
	}
	if n > o.cfg.MaxLoops {
		return nil, fmt.Errorf("%w: at most %d loops", apperr.ErrInvalidLoopSequence, o.cfg.MaxLoops)
	}

	subtopics := pickSubtopics(s, o.cfg.SubtopicsPerLoop)
	req := contentgen.ArtifactRequest{
		Topic:      s.Topic,
		Difficulty: s.CurrentDifficulty,
		Modality:   s.Modality,
		Subtopics:  subtopics,
		Student: contentgen.StudentContext{
			TypicalAnswerStyle: o.typicalStyle(ctx, s),
			SubtopicMastery:    copyMastery(s.SubtopicMastery),
			Avoid:              shownPrompts(s),
		},
	}
	artifact, err := o.deps.Generator.GenerateArtifact(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate artifact: %w", err)
	}

	l := &Loop{
		Number:    n,
		StartedAt: o.clk.Now(),
		Artifact:  artifact,
	}
	s.Loops = append(s.Loops, l)

	o.persist(ctx, s)
	o.record(ctx, s, "loop_started", n, 0, strings.Join(subtopics, ", "))
	return cloneLoop(l), nil
}

// RecordResults attaches results to open loop n. Results can be recorded
// once per loop.
func (o *Orchestrator) RecordResults(ctx context.Context, id string, n int, results []ItemResult) (*Loop, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	s, err := o.live(id)
	if err != nil {
		return nil, err
	}
	if err := o.requireActive(s); err != nil {
		return nil, err
	}
	l := s.loop(n)
	if l == nil {
		return nil, fmt.Errorf("%w: loop %d has not started", apperr.ErrInvalidLoopSequence, n)
	}
	if l.Sealed || l.Results != nil {
		return nil, fmt.Errorf("%w: loop %d", apperr.ErrLoopAlreadySealed, n)
	}
	if len(results) == 0 {
		return nil, apperr.Invalid("loop %d: results are empty", n)
	}

	count := l.Artifact.ItemCount()
	normalized := make([]ItemResult, len(results))
	for i, r := range results {
		if r.ItemIndex < 0 || (count > 0 && r.ItemIndex >= count) {
			return nil, apperr.Invalid("result %d: item index %d outside [0,%d)", i, r.ItemIndex, count)
		}
		if r.TimeSecs < 0 || r.HintsUsed < 0 {
			return nil, apperr.Invalid("result %d: negative time or hints", i)
		}
		if r.AnswerStyle != "" && !r.AnswerStyle.Valid() {
			return nil, apperr.Invalid("result %d: unknown answer style %q", i, r.AnswerStyle)
		}
		if r.Subtopic == "" {
			r.Subtopic = l.Artifact.ItemSubtopic(r.ItemIndex)
		}
		normalized[i] = r
	}
	l.Results = normalized

	o.persist(ctx, s)
	return cloneLoop(l), nil
}

// CompleteLoop grades loop n, adapts difficulty, updates rolling subtopic
// mastery and seals the loop.
func (o *Orchestrator) CompleteLoop(ctx context.Context, id string, n int) (*LoopPerformance, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	s, err := o.live(id)
	if err != nil {
		return nil, err
	}
	if err := o.requireActive(s); err != nil {
		return nil, err
	}
	l := s.loop(n)
	if l == nil {
		return nil, fmt.Errorf("%w: loop %d has not started", apperr.ErrInvalidLoopSequence, n)
	}
	if l.Sealed {
		return nil, fmt.Errorf("%w: loop %d", apperr.ErrLoopAlreadySealed, n)
	}
	if len(l.Results) == 0 {
		return nil, apperr.Conflict("loop %d has no results", n)
	}

	now := o.clk.Now()
	perf := EvaluateLoop(l.Results, o.cfg.MaxHints)
	l.Performance = &perf

	if adj := NextDifficulty(s.CurrentDifficulty, perf, o.cfg); adj != nil {
		l.Adjustment = adj
		s.CurrentDifficulty = adj.To
		o.emit(events.Event{
			Kind:      events.KindDifficultyAdjusted,
			StudentID: s.StudentID,
			SessionID: s.ID,
			From:      string(adj.From),
			To:        string(adj.To),
			Reason:    adj.Reason,
			At:        now,
		})
	}

	order, acc := subtopicAccuracy(l.Results)
	for _, name := range order {
		prev, seen := s.SubtopicMastery[name]
		next := rollMastery(prev, seen, acc[name], o.cfg.RollingWeight)
		s.SubtopicMastery[name] = next
		if next >= o.cfg.MasteryThreshold && (!seen || prev < o.cfg.MasteryThreshold) {
			o.emit(events.Event{
				Kind:      events.KindConceptMastered,
				StudentID: s.StudentID,
				SessionID: s.ID,
				Subtopic:  name,
				Reason:    fmt.Sprintf("Mastered %s", name),
				At:        now,
			})
		}
	}

	l.Sealed = true
	l.SealedAt = &now

	o.persist(ctx, s)
	o.record(ctx, s, "loop_completed", n, perf.Accuracy, string(s.CurrentDifficulty))
	o.logger(s).WithFields(logrus.Fields{
		"loop":        n,
		"accuracy":    perf.Accuracy,
		"frustration": perf.FrustrationLevel,
		"difficulty":  s.CurrentDifficulty,
	}).Debug("loop completed")
	return &perf, nil
}

// Complete closes a session whose loops are done and produces its
// performance summary and review plan.
func (o *Orchestrator) Complete(ctx context.Context, id string) (*Session, *SessionPerformance, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	s, err := o.live(id)
	if err != nil {
		return nil, nil, err
	}
	if err := o.requireActive(s); err != nil {
		return nil, nil, err
	}
	if len(s.Loops) < o.cfg.MinLoops {
		return nil, nil, fmt.Errorf("%w: %d loops completed, need at least %d", apperr.ErrInvalidLoopSequence, len(s.Loops), o.cfg.MinLoops)
	}
	if last := s.lastLoop(); !last.Sealed {
		return nil, nil, fmt.Errorf("%w: loop %d is not sealed", apperr.ErrInvalidLoopSequence, last.Number)
	}

	now := o.clk.Now()
	s.EndTime = &now
	perf := BuildPerformance(s, now, o.cfg.MasteryThreshold, o.typicalStyle(ctx, s))
	s.Performance = perf
	s.Status = StatusCompleted
	s.ReviewPlan = o.deps.Planner.Plan(s.Clone(), perf, now)

	o.release(s)
	o.persist(ctx, s)
	o.record(ctx, s, "completed", len(s.Loops), perf.AverageAccuracy, "")
	o.logger(s).WithFields(logrus.Fields{
		"accuracy": perf.AverageAccuracy,
		"mastered": len(perf.MasteredConcepts),
	}).Info("focus session completed")

	out := s.Clone()
	return out, out.Performance, nil
}

// Cancel ends a planning or active session.
func (o *Orchestrator) Cancel(ctx context.Context, id, reason string) (*Session, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	s, err := o.live(id)
	if err != nil {
		return nil, err
	}
	if s.Status.Terminal() {
		return nil, fmt.Errorf("%w: session %s is %s", apperr.ErrSessionTerminal, s.ID, s.Status)
	}
	o.cancel(ctx, s, reason)
	return s.Clone(), nil
}

// cancel requires the per-session lock and a non-terminal session.
func (o *Orchestrator) cancel(ctx context.Context, s *Session, reason string) {
	now := o.clk.Now()
	s.Status = StatusCancelled
	s.EndTime = &now
	s.CancelReason = reason

	o.release(s)
	o.persist(ctx, s)
	o.record(ctx, s, "cancelled", len(s.Loops), 0, reason)
	o.logger(s).WithField("reason", reason).Info("focus session cancelled")
}

// Get returns a copy of the session, reading terminal sessions from the
// store when they are no longer in memory.
func (o *Orchestrator) Get(ctx context.Context, id string) (*Session, error) {
	unlock := o.locks.Lock(id)
	defer unlock()

	o.mu.RLock()
	s, ok := o.sessions[id]
	o.mu.RUnlock()
	if ok {
		return s.Clone(), nil
	}

	rec, err := o.deps.Repo.LoadSession(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		return nil, apperr.Unavailable("load session", err)
	}
	return decode(rec)
}

// Elapsed returns the time spent in the session so far, or its total
// duration once terminal.
func (o *Orchestrator) Elapsed(ctx context.Context, id string) (time.Duration, error) {
	s, err := o.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return o.elapsed(s), nil
}

func (o *Orchestrator) elapsed(s *Session) time.Duration {
	end := o.clk.Now()
	if s.EndTime != nil {
		end = *s.EndTime
	}
	return max(end.Sub(s.StartTime), 0)
}

// LoopBudget splits the remaining target time over the loops not yet
// completed.
func (o *Orchestrator) LoopBudget(ctx context.Context, id string) (LoopBudget, error) {
	s, err := o.Get(ctx, id)
	if err != nil {
		return LoopBudget{}, err
	}
	if s.Status.Terminal() {
		return LoopBudget{}, nil
	}
	sealed := 0
	for _, l := range s.Loops {
		if l.Sealed {
			sealed++
		}
	}
	remainingLoops := max(o.cfg.MaxLoops-sealed, 0)
	remaining := max(float64(s.TargetDurationSeconds)-o.elapsed(s).Seconds(), 0)

	b := LoopBudget{LoopsRemaining: remainingLoops, RemainingSeconds: remaining}
	if remainingLoops > 0 {
		b.SecondsPerLoop = remaining / float64(remainingLoops)
	}
	return b, nil
}

// Restore reloads open sessions from the store, typically at boot. It
// returns the number of sessions restored.
func (o *Orchestrator) Restore(ctx context.Context) (int, error) {
	recs, err := o.deps.Repo.OpenSessions(ctx)
	if err != nil {
		return 0, apperr.Unavailable("load open sessions", err)
	}

	restored := 0
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, rec := range recs {
		s, err := decode(&rec)
		if err != nil {
			o.log.WithError(err).WithField("session_id", rec.ID).Warn("skipping unreadable session")
			continue
		}
		if s.Status.Terminal() {
			continue
		}
		if other, ok := o.active[s.StudentID]; ok && other != s.ID {
			o.log.WithFields(logrus.Fields{
				"session_id": s.ID,
				"student_id": s.StudentID,
			}).Warn("student already has an open session, skipping")
			continue
		}
		o.sessions[s.ID] = s
		o.active[s.StudentID] = s.ID
		restored++
	}
	return restored, nil
}

// Sweep cancels open sessions that ran past their target duration plus the
// grace period and evicts sessions that ended more than cfg.Retention ago.
// It returns the IDs of cancelled sessions.
func (o *Orchestrator) Sweep(ctx context.Context, now time.Time) []string {
	defer o.evict(now)

	o.mu.RLock()
	ids := make([]string, 0, len(o.active))
	for _, id := range o.active {
		ids = append(ids, id)
	}
	o.mu.RUnlock()

	var swept []string
	for _, id := range ids {
		if o.sweepOne(ctx, id, now) {
			swept = append(swept, id)
		}
	}
	return swept
}

func (o *Orchestrator) sweepOne(ctx context.Context, id string, now time.Time) bool {
	unlock := o.locks.Lock(id)
	defer unlock()

	o.mu.RLock()
	s, ok := o.sessions[id]
	o.mu.RUnlock()
	if !ok || s.Status.Terminal() {
		return false
	}
	deadline := s.StartTime.Add(time.Duration(s.TargetDurationSeconds)*time.Second + o.cfg.SweepGrace)
	if !now.After(deadline) {
		return false
	}
	o.cancel(ctx, s, "timeout")
	return true
}

func (o *Orchestrator) evict(now time.Time) {
	cutoff := now.Add(-o.cfg.Retention)
	o.mu.Lock()
	defer o.mu.Unlock()
	for id, end := range o.ended {
		if end.Before(cutoff) {
			delete(o.sessions, id)
			delete(o.ended, id)
		}
	}
}

// Resident returns the number of sessions held in memory.
func (o *Orchestrator) Resident() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.sessions)
}

func (o *Orchestrator) live(id string) (*Session, error) {
	o.mu.RLock()
	s, ok := o.sessions[id]
	o.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound("session %s", id)
	}
	return s, nil
}

func (o *Orchestrator) requireActive(s *Session) error {
	switch {
	case s.Status.Terminal():
		return fmt.Errorf("%w: session %s is %s", apperr.ErrSessionTerminal, s.ID, s.Status)
	case s.Status != StatusActive:
		return apperr.Conflict("session %s is %s", s.ID, s.Status)
	}
	return nil
}

// forget drops a session that never became active.
func (o *Orchestrator) forget(s *Session) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.sessions, s.ID)
	if o.active[s.StudentID] == s.ID {
		delete(o.active, s.StudentID)
	}
}

// release frees the student's slot. The terminal session stays in memory
// until a sweep past its retention, so reads see it while a failed write
// is still being retried.
func (o *Orchestrator) release(s *Session) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.active[s.StudentID] == s.ID {
		delete(o.active, s.StudentID)
	}
	end := o.clk.Now()
	if s.EndTime != nil {
		end = *s.EndTime
	}
	o.ended[s.ID] = end
}

func (o *Orchestrator) typicalStyle(ctx context.Context, s *Session) mastery.AnswerStyle {
	if o.deps.Profile == nil {
		return ""
	}
	style, err := o.deps.Profile.TypicalAnswerStyle(ctx, s.StudentID, s.Topic)
	if err != nil {
		o.logger(s).WithError(err).Debug("learner profile unavailable")
		return ""
	}
	return style
}

func (o *Orchestrator) persist(ctx context.Context, s *Session) {
	doc, err := json.Marshal(s)
	if err != nil {
		o.logger(s).WithError(err).Error("encode session")
		return
	}
	rec := store.SessionRecord{
		ID:        s.ID,
		StudentID: s.StudentID,
		Topic:     s.Topic,
		Status:    string(s.Status),
		StartedAt: s.StartTime,
		EndedAt:   s.EndTime,
		Document:  doc,
	}
	if err := o.deps.Repo.SaveSession(ctx, rec); err != nil {
		o.logger(s).WithError(err).Warn("persist session failed")
	}
}

func (o *Orchestrator) record(ctx context.Context, s *Session, action string, loop int, accuracy float64, detail string) {
	if o.deps.Recorder == nil {
		return
	}
	err := o.deps.Recorder.AppendSession(ctx, store.SessionEventData{
		SessionID:  s.ID,
		StudentID:  s.StudentID,
		Kind:       "focus",
		Action:     action,
		Difficulty: string(s.CurrentDifficulty),
		LoopNumber: loop,
		Accuracy:   accuracy,
		Detail:     detail,
	})
	if err != nil {
		o.logger(s).WithError(err).Warn("record session event failed")
	}
}

func (o *Orchestrator) emit(e events.Event) {
	if o.deps.Events != nil {
		o.deps.Events.Emit(e)
	}
}

func (o *Orchestrator) logger(s *Session) logrus.FieldLogger {
	return o.log.WithFields(logrus.Fields{
		"session_id": s.ID,
		"student_id": s.StudentID,
	})
}

func decode(rec *store.SessionRecord) (*Session, error) {
	var s Session
	if err := json.Unmarshal(rec.Document, &s); err != nil {
		return nil, apperr.Internal("decode session", err)
	}
	if s.SubtopicMastery == nil {
		s.SubtopicMastery = map[string]float64{}
	}
	return &s, nil
}

func cloneLoop(l *Loop) *Loop {
	b, err := json.Marshal(l)
	if err != nil {
		panic("session: clone loop: " + err.Error())
	}
	var out Loop
	if err := json.Unmarshal(b, &out); err != nil {
		panic("session: clone loop: " + err.Error())
	}
	return &out
}

func copyMastery(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
