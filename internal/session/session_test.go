package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/events"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 4, 15, 0, 0, 0, time.UTC)

type memRepo struct {
	mu      sync.Mutex
	recs    map[string]store.SessionRecord
	saveErr error
	saves   int
}

func newMemRepo() *memRepo {
	return &memRepo{recs: map[string]store.SessionRecord{}}
}

func (r *memRepo) LoadSession(_ context.Context, id string) (*store.SessionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recs[id]
	if !ok {
		return nil, apperr.NotFound("session %s", id)
	}
	return &rec, nil
}

func (r *memRepo) SaveSession(_ context.Context, rec store.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.recs[rec.ID] = rec
	return nil
}

func (r *memRepo) OpenSessions(context.Context) ([]store.SessionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []store.SessionRecord
	for _, rec := range r.recs {
		if rec.Status == string(StatusPlanning) || rec.Status == string(StatusActive) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type stubPlanner struct {
	calls int
}

func (p *stubPlanner) Plan(s *Session, perf *SessionPerformance, _ time.Time) *ReviewPlan {
	p.calls++
	return &ReviewPlan{
		ReviewSubtopics:     perf.NeedingReview,
		RecommendedModality: s.Modality,
		TargetDifficulty:    s.CurrentDifficulty,
		Reasoning:           "stub",
	}
}

type failingGenerator struct {
	contentgen.Generator
	err error
}

func (g failingGenerator) BuildConceptMap(context.Context, string) (*contentgen.ConceptMap, error) {
	return nil, g.err
}

type fixture struct {
	orch    *Orchestrator
	repo    *memRepo
	clk     *clock.Manual
	outbox  *events.Outbox
	planner *stubPlanner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:    newMemRepo(),
		clk:     clock.NewManual(t0),
		outbox:  events.NewOutbox(0),
		planner: &stubPlanner{},
	}
	f.orch = f.build()
	return f
}

func (f *fixture) build() *Orchestrator {
	return NewOrchestrator(Deps{
		Repo:      f.repo,
		Generator: contentgen.NewTemplate(4),
		Planner:   f.planner,
		Events:    f.outbox,
		Clock:     f.clk,
	}, DefaultConfig())
}

func (f *fixture) start(t *testing.T, student string) *Session {
	t.Helper()
	s, err := f.orch.Start(context.Background(), StartRequest{StudentID: student, Topic: "fractions"})
	require.NoError(t, err)
	return s
}

// runLoop plays loop n answering every item with the given outcome.
func (f *fixture) runLoop(t *testing.T, id string, n int, correct bool, hints int) *LoopPerformance {
	t.Helper()
	ctx := context.Background()
	l, err := f.orch.StartLoop(ctx, id, n)
	require.NoError(t, err)

	results := make([]ItemResult, l.Artifact.ItemCount())
	for i := range results {
		results[i] = ItemResult{ItemIndex: i, Correct: correct, TimeSecs: 20, HintsUsed: hints, AnswerStyle: mastery.StyleWorked}
	}
	_, err = f.orch.RecordResults(ctx, id, n, results)
	require.NoError(t, err)

	f.clk.Advance(4 * time.Minute)
	perf, err := f.orch.CompleteLoop(ctx, id, n)
	require.NoError(t, err)
	return perf
}

func kinds(evs []events.Event, k events.Kind) []events.Event {
	var out []events.Event
	for _, e := range evs {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func TestFullSessionLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s := f.start(t, "stu")
	assert.Equal(t, StatusActive, s.Status)
	assert.Equal(t, mastery.DifficultyEasy, s.CurrentDifficulty)
	assert.Equal(t, contentgen.ModalityQuiz, s.Modality)
	require.NotNil(t, s.ConceptMap)
	assert.Len(t, s.ConceptMap.Subtopics, 5)

	perf := f.runLoop(t, s.ID, 1, true, 0)
	assert.Equal(t, 1.0, perf.Accuracy)
	assert.Equal(t, 0.0, perf.FrustrationLevel)

	got, err := f.orch.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, mastery.DifficultyMedium, got.CurrentDifficulty)
	assert.Equal(t, 100.0, got.SubtopicMastery["equal parts"])
	assert.Equal(t, 100.0, got.SubtopicMastery["numerators and denominators"])

	evs := f.outbox.Drain()
	assert.Len(t, kinds(evs, events.KindDifficultyAdjusted), 1)
	mastered := kinds(evs, events.KindConceptMastered)
	require.Len(t, mastered, 2)
	assert.Equal(t, "equal parts", mastered[0].Subtopic)

	l2, err := f.orch.StartLoop(ctx, s.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"equivalent fractions", "comparing fractions"}, l2.Artifact.Subtopics)
	assert.Equal(t, mastery.DifficultyMedium, l2.Artifact.Difficulty)
	_, err = f.orch.RecordResults(ctx, s.ID, 2, []ItemResult{
		{ItemIndex: 0, Correct: true, TimeSecs: 20},
		{ItemIndex: 1, Correct: false, TimeSecs: 20},
	})
	require.NoError(t, err)
	_, err = f.orch.CompleteLoop(ctx, s.ID, 2)
	require.NoError(t, err)

	_, _, err = f.orch.Complete(ctx, s.ID)
	require.ErrorIs(t, err, apperr.ErrInvalidLoopSequence)

	f.runLoop(t, s.ID, 3, true, 0)

	done, sp, err := f.orch.Complete(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)
	require.NotNil(t, done.EndTime)
	assert.Equal(t, 3, sp.LoopsCompleted)
	assert.Equal(t, mastery.StyleWorked, sp.TypicalAnswerStyle)
	assert.Contains(t, sp.MasteredConcepts, "equal parts")
	assert.Contains(t, sp.NeedingReview, "comparing fractions")
	assert.Equal(t, 1, f.planner.calls)
	require.NotNil(t, done.ReviewPlan)

	// The student may start again once the session is closed.
	again := f.start(t, "stu")
	assert.NotEqual(t, s.ID, again.ID)
}

func TestStartRejectsSecondActiveSession(t *testing.T) {
	f := newFixture(t)
	f.start(t, "stu")

	_, err := f.orch.Start(context.Background(), StartRequest{StudentID: "stu", Topic: "multiplication"})
	require.ErrorIs(t, err, apperr.ErrSessionAlreadyActive)
	assert.Equal(t, apperr.KindStateConflict, apperr.KindOf(err))

	f.start(t, "other")
}

func TestStartValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, req := range []StartRequest{
		{Topic: "fractions"},
		{StudentID: "stu"},
		{StudentID: "stu", Topic: "fractions", TargetDurationSeconds: -1},
		{StudentID: "stu", Topic: "fractions", InitialDifficulty: "brutal"},
		{StudentID: "stu", Topic: "fractions", Modality: "podcast"},
	} {
		_, err := f.orch.Start(ctx, req)
		assert.ErrorIs(t, err, apperr.ErrValidation, "%+v", req)
	}
}

func TestStartFailureFreesStudent(t *testing.T) {
	f := newFixture(t)
	f.orch = NewOrchestrator(Deps{
		Repo:      f.repo,
		Generator: failingGenerator{err: apperr.Unavailable("concept map", errors.New("boom"))},
		Planner:   f.planner,
		Clock:     f.clk,
	}, DefaultConfig())

	_, err := f.orch.Start(context.Background(), StartRequest{StudentID: "stu", Topic: "fractions"})
	require.ErrorIs(t, err, apperr.ErrUnavailable)

	f.orch.deps.Generator = contentgen.NewTemplate(4)
	f.start(t, "stu")
}

func TestLoopSequencing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.start(t, "stu")

	_, err := f.orch.StartLoop(ctx, s.ID, 2)
	require.ErrorIs(t, err, apperr.ErrInvalidLoopSequence)

	_, err = f.orch.StartLoop(ctx, s.ID, 1)
	require.NoError(t, err)
	_, err = f.orch.StartLoop(ctx, s.ID, 2)
	require.ErrorIs(t, err, apperr.ErrInvalidLoopSequence, "loop 1 is not sealed")

	_, err = f.orch.CompleteLoop(ctx, s.ID, 1)
	assert.Equal(t, apperr.KindStateConflict, apperr.KindOf(err))

	_, err = f.orch.RecordResults(ctx, s.ID, 1, nil)
	require.ErrorIs(t, err, apperr.ErrValidation)
	_, err = f.orch.RecordResults(ctx, s.ID, 1, []ItemResult{{ItemIndex: 99}})
	require.ErrorIs(t, err, apperr.ErrValidation)

	l, err := f.orch.RecordResults(ctx, s.ID, 1, []ItemResult{{ItemIndex: 1, Correct: true, TimeSecs: 10}})
	require.NoError(t, err)
	assert.Equal(t, "numerators and denominators", l.Results[0].Subtopic)

	_, err = f.orch.RecordResults(ctx, s.ID, 1, []ItemResult{{ItemIndex: 0}})
	require.ErrorIs(t, err, apperr.ErrLoopAlreadySealed)

	_, err = f.orch.CompleteLoop(ctx, s.ID, 1)
	require.NoError(t, err)
	_, err = f.orch.CompleteLoop(ctx, s.ID, 1)
	require.ErrorIs(t, err, apperr.ErrLoopAlreadySealed)

	_, err = f.orch.StartLoop(ctx, "missing", 1)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMaxLoops(t *testing.T) {
	f := newFixture(t)
	s := f.start(t, "stu")
	for n := 1; n <= 4; n++ {
		f.runLoop(t, s.ID, n, true, 0)
	}
	_, err := f.orch.StartLoop(context.Background(), s.ID, 5)
	require.ErrorIs(t, err, apperr.ErrInvalidLoopSequence)

	_, _, err = f.orch.Complete(context.Background(), s.ID)
	require.NoError(t, err)
}

func TestFrustrationLowersDifficulty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s, err := f.orch.Start(ctx, StartRequest{
		StudentID: "stu", Topic: "fractions", InitialDifficulty: mastery.DifficultyMedium,
	})
	require.NoError(t, err)
	_, err = f.orch.StartLoop(ctx, s.ID, 1)
	require.NoError(t, err)

	// Every answer is correct, but each needed all the hints and the pace
	// was erratic.
	_, err = f.orch.RecordResults(ctx, s.ID, 1, []ItemResult{
		{ItemIndex: 0, Correct: true, TimeSecs: 10, HintsUsed: 3},
		{ItemIndex: 1, Correct: true, TimeSecs: 30, HintsUsed: 3},
		{ItemIndex: 2, Correct: true, TimeSecs: 10, HintsUsed: 3},
		{ItemIndex: 3, Correct: true, TimeSecs: 30, HintsUsed: 3},
	})
	require.NoError(t, err)
	perf, err := f.orch.CompleteLoop(ctx, s.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, perf.Accuracy)
	assert.InDelta(t, 0.625, perf.FrustrationLevel, 1e-9)

	got, err := f.orch.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Loops[0].Adjustment)
	assert.Equal(t, mastery.DifficultyEasy, got.CurrentDifficulty)
	assert.Equal(t, mastery.DifficultyMedium, got.Loops[0].Adjustment.From)
}

func TestDifficultyClampedAtEasy(t *testing.T) {
	f := newFixture(t)
	s := f.start(t, "stu")
	f.runLoop(t, s.ID, 1, false, 0)

	got, err := f.orch.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Loops[0].Adjustment)
	assert.Equal(t, mastery.DifficultyEasy, got.CurrentDifficulty)
	assert.Empty(t, kinds(f.outbox.Drain(), events.KindDifficultyAdjusted))
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.start(t, "stu")

	c, err := f.orch.Cancel(ctx, s.ID, "learner left")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, c.Status)
	assert.Equal(t, "learner left", c.CancelReason)

	_, err = f.orch.StartLoop(ctx, s.ID, 1)
	require.ErrorIs(t, err, apperr.ErrSessionTerminal)
	_, err = f.orch.Cancel(ctx, s.ID, "again")
	require.ErrorIs(t, err, apperr.ErrSessionTerminal)

	f.start(t, "stu")
}

func TestSweepCancelsOverdueSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.start(t, "stu")
	f.start(t, "late")

	f.clk.Advance(20*time.Minute + 10*time.Minute)
	assert.Empty(t, f.orch.Sweep(ctx, f.clk.Now()), "exactly at the grace deadline")

	swept := f.orch.Sweep(ctx, f.clk.Now().Add(time.Second))
	assert.Len(t, swept, 2)

	got, err := f.orch.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Equal(t, "timeout", got.CancelReason)
	assert.Empty(t, f.orch.Sweep(ctx, f.clk.Now().Add(time.Hour)))
}

func TestSweepEvictsFinishedSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	done := f.start(t, "stu")
	for n := 1; n <= 3; n++ {
		f.runLoop(t, done.ID, n, true, 0)
	}
	_, _, err := f.orch.Complete(ctx, done.ID)
	require.NoError(t, err)
	left := f.start(t, "other")
	_, err = f.orch.Cancel(ctx, left.ID, "learner left")
	require.NoError(t, err)
	open := f.start(t, "third")
	require.Equal(t, 3, f.orch.Resident())

	f.orch.Sweep(ctx, f.clk.Now().Add(DefaultConfig().Retention))
	assert.Equal(t, 3, f.orch.Resident(), "retention not yet passed")

	f.orch.Sweep(ctx, f.clk.Now().Add(DefaultConfig().Retention+time.Second))
	assert.Equal(t, 1, f.orch.Resident())

	got, err := f.orch.Get(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	require.Len(t, got.Loops, 3)
	got, err = f.orch.Get(ctx, left.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)

	_, err = f.orch.StartLoop(ctx, open.ID, 1)
	require.NoError(t, err)
	_, err = f.orch.StartLoop(ctx, done.ID, 4)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestElapsedAndBudget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.start(t, "stu")

	f.clk.Advance(5 * time.Minute)
	el, err := f.orch.Elapsed(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, el)

	b, err := f.orch.LoopBudget(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, b.LoopsRemaining)
	assert.InDelta(t, 900, b.RemainingSeconds, 1e-9)
	assert.InDelta(t, 225, b.SecondsPerLoop, 1e-9)

	f.runLoop(t, s.ID, 1, true, 0)
	b, err = f.orch.LoopBudget(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, b.LoopsRemaining)
	assert.InDelta(t, 660, b.RemainingSeconds, 1e-9)

	_, err = f.orch.Cancel(ctx, s.ID, "")
	require.NoError(t, err)
	f.clk.Advance(time.Hour)
	el, err = f.orch.Elapsed(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 9*time.Minute, el)
}

func TestRestoreFromStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.start(t, "stu")
	f.runLoop(t, s.ID, 1, true, 0)
	closed := f.start(t, "gone")
	_, err := f.orch.Cancel(ctx, closed.ID, "")
	require.NoError(t, err)

	restarted := f.build()
	n, err := restarted.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := restarted.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, mastery.DifficultyMedium, got.CurrentDifficulty)
	require.Len(t, got.Loops, 1)
	assert.True(t, got.Loops[0].Sealed)

	_, err = restarted.Start(ctx, StartRequest{StudentID: "stu", Topic: "fractions"})
	require.ErrorIs(t, err, apperr.ErrSessionAlreadyActive)

	// Terminal sessions are read through from the store.
	gone, err := restarted.Get(ctx, closed.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, gone.Status)

	_, err = restarted.StartLoop(ctx, s.ID, 2)
	require.NoError(t, err)
}

func TestCompletedSessionSurvivesStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.start(t, "stu")
	f.runLoop(t, s.ID, 1, true, 0)
	f.runLoop(t, s.ID, 2, false, 3)
	f.runLoop(t, s.ID, 3, true, 1)
	want, _, err := f.orch.Complete(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, want.ReviewPlan)

	got, err := f.build().Get(ctx, s.ID)
	require.NoError(t, err)

	wantDoc, err := json.Marshal(want)
	require.NoError(t, err)
	gotDoc, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantDoc), string(gotDoc))

	require.Len(t, got.Loops, 3)
	for _, l := range got.Loops {
		assert.True(t, l.Sealed)
		assert.Equal(t, l.Artifact.ItemCount(), len(l.Results))
	}
	assert.True(t, got.StartTime.Equal(want.StartTime))
	assert.Equal(t, want.SubtopicMastery, got.SubtopicMastery)
	assert.Equal(t, want.Performance, got.Performance)
	assert.Equal(t, want.ReviewPlan.Reasoning, got.ReviewPlan.Reasoning)
}

func TestPersistFailureDoesNotFailOperations(t *testing.T) {
	f := newFixture(t)
	f.repo.saveErr = apperr.Unavailable("save", errors.New("disk full"))

	s := f.start(t, "stu")
	f.runLoop(t, s.ID, 1, true, 0)
	assert.Positive(t, f.repo.saves)

	got, err := f.orch.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Len(t, got.Loops, 1)
}

func TestGetReturnsCopies(t *testing.T) {
	f := newFixture(t)
	s := f.start(t, "stu")
	s.SubtopicMastery["equal parts"] = 99
	s.Status = StatusCancelled

	got, err := f.orch.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, got.Status)
	assert.NotContains(t, got.SubtopicMastery, "equal parts")
}

func TestConcurrentLoopsAcrossSessions(t *testing.T) {
	f := newFixture(t)
	ids := make([]string, 8)
	for i := range ids {
		ids[i] = f.start(t, string(rune('a'+i))).ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			ctx := context.Background()
			if _, err := f.orch.StartLoop(ctx, id, 1); err != nil {
				errs <- err
				return
			}
			if _, err := f.orch.RecordResults(ctx, id, 1, []ItemResult{{ItemIndex: 0, Correct: true, TimeSecs: 5}}); err != nil {
				errs <- err
				return
			}
			_, err := f.orch.CompleteLoop(ctx, id, 1)
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
