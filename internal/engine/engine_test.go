package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/diagnosis"
	"github.com/abhisek/focusloop/internal/events"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/scaffold"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/abhisek/focusloop/internal/spacedrep"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var t0 = time.Date(2026, 6, 1, 16, 0, 0, 0, time.UTC)

// scripted returns queued evaluations in order and repeats the last one.
// With a gate set, every call waits until the gate's count is reached.
type scripted struct {
	mu    sync.Mutex
	queue []mastery.GradedAttempt
	reqs  []diagnosis.EvaluateRequest
	err   error
	gate  *sync.WaitGroup
}

func (s *scripted) EvaluateAttempt(_ context.Context, req diagnosis.EvaluateRequest) (*diagnosis.Evaluation, error) {
	if s.gate != nil {
		s.gate.Done()
		s.gate.Wait()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	a := s.queue[0]
	if len(s.queue) > 1 {
		s.queue = s.queue[1:]
	}
	return &diagnosis.Evaluation{GradedAttempt: a, Evaluator: "scripted"}, nil
}

func correctWorked() mastery.GradedAttempt {
	return mastery.GradedAttempt{
		Correctness:      mastery.Correct,
		ReasoningQuality: 4,
		AnswerStyle:      mastery.StyleWorked,
		ConfidenceLevel:  mastery.ConfidenceMedium,
	}
}

func confidentWrong() mastery.GradedAttempt {
	return mastery.GradedAttempt{
		Correctness:      mastery.Incorrect,
		ReasoningQuality: 2,
		AnswerStyle:      mastery.StyleWorked,
		ConfidenceLevel:  mastery.ConfidenceHigh,
	}
}

// failingNotes rejects every note write.
type failingNotes struct {
	store.NoteRepo
}

func (failingNotes) AddNote(context.Context, store.NoteRecord) error {
	return errors.New("notes table is locked")
}

type fixture struct {
	notes store.NoteRepo
	store *store.Store
	clk   *clock.Manual
	eval  *scripted
	cache *mastery.MemoryCache
	spans *tracetest.InMemoryExporter
	cfg   Config
	eng   *Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(store.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	f := &fixture{
		store: st,
		clk:   clock.NewManual(t0),
		eval:  &scripted{queue: []mastery.GradedAttempt{correctWorked()}},
		spans: tracetest.NewInMemoryExporter(),
		cfg:   DefaultConfig(),
	}
	f.rebuild()
	return f
}

// rebuild creates a fresh engine over the same store, as after a restart.
func (f *fixture) rebuild() {
	f.cache = mastery.NewMemoryCache()
	notes := f.notes
	if notes == nil {
		notes = f.store.NoteRepo()
	}
	outbox := events.NewOutbox(0)
	orch := session.NewOrchestrator(session.Deps{
		Repo:      f.store.SessionRepo(),
		Generator: contentgen.NewTemplate(4),
		Planner:   spacedrep.NewPlanner(spacedrep.DefaultConfig()),
		Recorder:  f.store.EventRepo(),
		Events:    outbox,
		Clock:     f.clk,
	}, session.DefaultConfig())
	f.eng = New(Deps{
		Ledger:       mastery.NewLedger(f.store.SkillRepo(), f.clk, nil),
		Evaluator:    f.eval,
		Orchestrator: orch,
		Scaffold:     scaffold.New(scaffold.DefaultConfig()),
		Cache:        f.cache,
		Outbox:       outbox,
		Events:       f.store.EventRepo(),
		Notes:        notes,
		Snapshots:    f.store.SnapshotRepo(),
		Tracer:       sdktrace.NewTracerProvider(sdktrace.WithSyncer(f.spans)),
		Clock:        f.clk,
	}, f.cfg)
}

func (f *fixture) seed(t *testing.T, student string) []*mastery.Skill {
	t.Helper()
	skills, err := f.eng.SeedCurriculum(context.Background(), student)
	require.NoError(t, err)
	return skills
}

func (f *fixture) skill(t *testing.T, student, domain string) *mastery.Skill {
	t.Helper()
	skills, err := f.eng.Skills(context.Background(), student)
	require.NoError(t, err)
	for _, s := range skills {
		if s.Domain == domain {
			return s
		}
	}
	t.Fatalf("no %s skill for %s", domain, student)
	return nil
}

func (f *fixture) grade(t *testing.T, student, skillID string) *GradeResult {
	t.Helper()
	res, err := f.eng.GradeAttempt(context.Background(), GradeRequest{
		StudentID:     student,
		SkillID:       skillID,
		QuestionText:  "What is 7 + 5?",
		StudentAnswer: "12",
		TimeSeconds:   20,
	})
	require.NoError(t, err)
	return res
}

func spanNamed(spans tracetest.SpanStubs, name string) *tracetest.SpanStub {
	for i := range spans {
		if spans[i].Name == name {
			return &spans[i]
		}
	}
	return nil
}

func TestSeedCurriculumIsIdempotent(t *testing.T) {
	f := newFixture(t)
	first := f.seed(t, "stu")
	require.Len(t, first, 10)

	second := f.seed(t, "stu")
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	assert.InDelta(t, 0.25, f.skill(t, "stu", "number-facts").DecayRate, 1e-9)
	assert.InDelta(t, 0.10, f.skill(t, "stu", "fractions").DecayRate, 1e-9)

	_, err := f.eng.SeedCurriculum(context.Background(), "")
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestNextMission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.eng.NextMission(ctx, "nobody")
	require.ErrorIs(t, err, apperr.ErrNoSkillsAvailable)

	f.seed(t, "stu")
	m, err := f.eng.NextMission(ctx, "stu")
	require.NoError(t, err)

	// Three factual skills tie on urgency; domain order decides.
	assert.Equal(t, "number-facts", m.TargetSkill.Domain)
	assert.Equal(t, mastery.DifficultyEasy, m.Difficulty)
	assert.Equal(t, contentgen.ModalityFlashcards, m.QuestionFormat)
	assert.InDelta(t, 25, m.Urgency, 1e-9)
	assert.Equal(t, t0, m.OpenedAt)

	got, err := f.eng.Mission(ctx, m.SessionID)
	require.NoError(t, err)
	assert.Equal(t, m.TargetSkill.ID, got.TargetSkill.ID)

	_, err = f.eng.Mission(ctx, "missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	span := spanNamed(f.spans.GetSpans(), "engine.NextMission")
	require.NotNil(t, span)
}

func TestQuestionFormat(t *testing.T) {
	tests := []struct {
		style mastery.AnswerStyle
		conf  mastery.Confidence
		want  contentgen.Modality
	}{
		{mastery.StyleGuess, mastery.ConfidenceHigh, contentgen.ModalityExplain},
		{mastery.StyleRushed, mastery.ConfidenceLow, contentgen.ModalityExplain},
		{mastery.StyleWorked, mastery.ConfidenceLow, contentgen.ModalityFlashcards},
		{mastery.StyleWorked, mastery.ConfidenceMedium, contentgen.ModalityQuiz},
		{"", mastery.ConfidenceHigh, contentgen.ModalityMicroGame},
	}
	for _, tt := range tests {
		s := &mastery.Skill{TypicalAnswerStyle: tt.style, Confidence: tt.conf}
		assert.Equal(t, tt.want, questionFormat(s), "%s/%s", tt.style, tt.conf)
	}
}

func TestGradeAttemptAppliesDelta(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "stu")
	sk := f.skill(t, "stu", "addition")

	res := f.grade(t, "stu", sk.ID)
	assert.Equal(t, 3, res.MasteryDelta)
	assert.InDelta(t, 3, res.NewMastery, 1e-9)
	assert.InDelta(t, 0.13, res.DecayRate, 1e-9)
	assert.Equal(t, mastery.ConfidenceLow, res.Confidence)
	assert.Equal(t, scaffold.HintNudge, res.Hint)
	assert.False(t, res.WorkedExample)
	assert.Equal(t, scaffold.IntensityHigh, res.Intensity)
	assert.Empty(t, res.Notes)

	require.Len(t, f.eval.reqs, 1)
	req := f.eval.reqs[0]
	assert.Equal(t, "addition", req.Domain)
	assert.Equal(t, "procedural", req.Category)

	grades, err := f.store.EventRepo().GradesAfter(context.Background(), "stu", 0, 0)
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, 3, grades[0].MasteryDelta)
	assert.Equal(t, "scripted", grades[0].Evaluator)

	p, err := f.cache.Get(context.Background(), "stu")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Len(t, p.RecentAnswers, 1)
	assert.Equal(t, grades[0].Sequence, p.LastEventSequence)
}

func TestGradeAttemptRaisesNotes(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "stu")
	sk := f.skill(t, "stu", "addition")
	f.eval.queue = []mastery.GradedAttempt{correctWorked(), confidentWrong()}

	f.grade(t, "stu", sk.ID)
	f.eng.Drain()
	res := f.grade(t, "stu", sk.ID)

	assert.Equal(t, -3, res.MasteryDelta)
	assert.InDelta(t, 0, res.NewMastery, 1e-9)
	require.Len(t, res.Notes, 1)
	assert.Equal(t, mastery.NoteConfidentError, res.Notes[0].Kind)

	stored, err := f.eng.Notes(context.Background(), "stu", 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, res.Notes[0].ID, stored[0].ID)

	evs := f.eng.Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, events.KindNoteRaised, evs[0].Kind)
	assert.Equal(t, sk.ID, evs[0].SkillID)
}

func TestGradeAttemptCrossingThreshold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.SkillRepo().SaveSkill(ctx, store.SkillRecord{
		ID: "sk-frac", StudentID: "stu", Domain: "fractions", Category: "conceptual",
		Mastery: 68, DecayRate: 0.1, LastSeen: t0,
	}))

	res := f.grade(t, "stu", "sk-frac")
	assert.InDelta(t, 71, res.NewMastery, 1e-9)
	assert.Equal(t, mastery.ConfidenceHigh, res.Confidence)

	evs := f.eng.Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, events.KindConceptMastered, evs[0].Kind)
	assert.Equal(t, "fractions", evs[0].Subtopic)

	f.grade(t, "stu", "sk-frac")
	assert.Empty(t, f.eng.Drain(), "already mastered")
}

func TestGradeAttemptResolvesStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "stu")
	m, err := f.eng.NextMission(ctx, "stu")
	require.NoError(t, err)

	res, err := f.eng.GradeAttempt(ctx, GradeRequest{
		SessionID:    m.SessionID,
		SkillID:      m.TargetSkill.ID,
		QuestionText: "7 x 8",
		TimeSeconds:  12,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.MasteryDelta)

	s, err := f.eng.StartFocusSession(ctx, session.StartRequest{StudentID: "stu", Topic: "fractions"})
	require.NoError(t, err)
	_, err = f.eng.GradeAttempt(ctx, GradeRequest{
		SessionID:    s.ID,
		SkillID:      m.TargetSkill.ID,
		QuestionText: "1/2 + 1/4",
	})
	require.NoError(t, err)

	_, err = f.eng.GradeAttempt(ctx, GradeRequest{SessionID: "missing", SkillID: "x", QuestionText: "q"})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = f.eng.GradeAttempt(ctx, GradeRequest{SkillID: "x", QuestionText: "q"})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGradeAttemptRejectsForeignSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "stu")
	m, err := f.eng.NextMission(ctx, "stu")
	require.NoError(t, err)
	s, err := f.eng.StartFocusSession(ctx, session.StartRequest{StudentID: "stu", Topic: "fractions"})
	require.NoError(t, err)

	for _, id := range []string{m.SessionID, s.ID} {
		_, err = f.eng.GradeAttempt(ctx, GradeRequest{
			StudentID:    "intruder",
			SessionID:    id,
			SkillID:      m.TargetSkill.ID,
			QuestionText: "6 + 6",
		})
		require.ErrorIs(t, err, apperr.ErrValidation, id)
	}
	assert.Empty(t, f.eval.reqs)

	// Sessions the engine does not track are taken at the caller's word.
	_, err = f.eng.GradeAttempt(ctx, GradeRequest{
		StudentID:    "stu",
		SessionID:    "classroom-42",
		SkillID:      m.TargetSkill.ID,
		QuestionText: "6 + 6",
	})
	require.NoError(t, err)
}

func TestConcurrentGradesKeepEveryDecayUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "stu")
	sk := f.skill(t, "stu", "addition")
	require.InDelta(t, 0.15, sk.DecayRate, 1e-9)

	expert := correctWorked()
	expert.ReasoningQuality = 5
	f.eval.queue = []mastery.GradedAttempt{expert}
	// Both grades read the skill before either applies its delta.
	var gate sync.WaitGroup
	gate.Add(2)
	f.eval.gate = &gate

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.eng.GradeAttempt(ctx, GradeRequest{
				StudentID: "stu", SkillID: sk.ID, QuestionText: "9 + 6", TimeSeconds: 15,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got := f.skill(t, "stu", "addition")
	assert.InDelta(t, 0.11, got.DecayRate, 1e-9)
	assert.InDelta(t, 6, got.Mastery, 1e-9)
	assert.Equal(t, 2, got.TotalAttempts)
}

func TestGradeAttemptSurvivesNoteStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.notes = failingNotes{NoteRepo: f.store.NoteRepo()}
	f.rebuild()
	f.seed(t, "stu")
	sk := f.skill(t, "stu", "addition")
	f.eval.queue = []mastery.GradedAttempt{confidentWrong()}

	res := f.grade(t, "stu", sk.ID)
	assert.Equal(t, -3, res.MasteryDelta)
	require.Len(t, res.Notes, 1)
	assert.Equal(t, mastery.NoteConfidentError, res.Notes[0].Kind)

	stored, err := f.eng.Notes(context.Background(), "stu", 0)
	require.NoError(t, err)
	assert.Empty(t, stored)

	grades, err := f.store.EventRepo().GradesAfter(context.Background(), "stu", 0, 0)
	require.NoError(t, err)
	assert.Len(t, grades, 1)
	evs := f.eng.Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, events.KindNoteRaised, evs[0].Kind)
}

func TestMissionsExpireFromMemory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "stu")
	old, err := f.eng.NextMission(ctx, "stu")
	require.NoError(t, err)

	f.clk.Advance(f.cfg.MissionTTL + time.Minute)
	_, err = f.eng.NextMission(ctx, "stu")
	require.NoError(t, err)

	f.eng.missionsMu.RLock()
	held := len(f.eng.missions)
	_, stillHeld := f.eng.missions[old.SessionID]
	f.eng.missionsMu.RUnlock()
	assert.Equal(t, 1, held)
	assert.False(t, stillHeld)

	got, err := f.eng.Mission(ctx, old.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "stu", got.StudentID)
	assert.Equal(t, old.TargetSkill.ID, got.TargetSkill.ID)
	assert.Equal(t, old.Difficulty, got.Difficulty)
	assert.Equal(t, old.QuestionFormat, got.QuestionFormat)
	assert.WithinDuration(t, old.OpenedAt, got.OpenedAt, time.Second)

	res, err := f.eng.GradeAttempt(ctx, GradeRequest{
		SessionID:    old.SessionID,
		SkillID:      old.TargetSkill.ID,
		QuestionText: "3 + 4",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.MasteryDelta)
}

func TestGradeAttemptValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for name, req := range map[string]GradeRequest{
		"no skill":         {StudentID: "stu", QuestionText: "q"},
		"no question":      {StudentID: "stu", SkillID: "x"},
		"negative time":    {StudentID: "stu", SkillID: "x", QuestionText: "q", TimeSeconds: -1},
		"negative hints":   {StudentID: "stu", SkillID: "x", QuestionText: "q", HintsUsed: -1},
		"negative attempt": {StudentID: "stu", SkillID: "x", QuestionText: "q", AttemptNumber: -2},
	} {
		_, err := f.eng.GradeAttempt(ctx, req)
		assert.ErrorIs(t, err, apperr.ErrValidation, name)
	}
	assert.Empty(t, f.eval.reqs)
}

func TestGradeAttemptEvaluatorFailure(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "stu")
	sk := f.skill(t, "stu", "addition")
	f.eval.err = apperr.Unavailable("evaluate", errors.New("provider down"))

	_, err := f.eng.GradeAttempt(context.Background(), GradeRequest{
		StudentID: "stu", SkillID: sk.ID, QuestionText: "2+2",
	})
	require.ErrorIs(t, err, apperr.ErrUnavailable)
	assert.InDelta(t, 0, f.skill(t, "stu", "addition").Mastery, 1e-9)

	span := spanNamed(f.spans.GetSpans(), "engine.GradeAttempt")
	require.NotNil(t, span)
	assert.Equal(t, codes.Error, span.Status.Code)
}

func TestPerformanceRebuiltAfterRestart(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "stu")
	sk := f.skill(t, "stu", "addition")
	f.grade(t, "stu", sk.ID)
	f.grade(t, "stu", sk.ID)

	f.rebuild()
	f.grade(t, "stu", sk.ID)

	p, err := f.cache.Get(context.Background(), "stu")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Len(t, p.RecentAnswers, 3)
	assert.Equal(t, 3, p.CurrentStreak)
	assert.InDelta(t, 9, p.MasteryLevel, 1e-9)
}

func TestSnapshotsTakenAndPruned(t *testing.T) {
	f := newFixture(t)
	f.cfg.SnapshotEvery = 2
	f.cfg.SnapshotKeep = 1
	f.rebuild()
	f.seed(t, "stu")
	sk := f.skill(t, "stu", "addition")
	ctx := context.Background()

	f.grade(t, "stu", sk.ID)
	snap, err := f.store.SnapshotRepo().Latest(ctx, "stu")
	require.NoError(t, err)
	assert.Nil(t, snap)

	for range 3 {
		f.grade(t, "stu", sk.ID)
	}
	snap, err = f.store.SnapshotRepo().Latest(ctx, "stu")
	require.NoError(t, err)
	require.NotNil(t, snap)

	restored, err := mastery.RestorePerformance(snap)
	require.NoError(t, err)
	assert.Len(t, restored.RecentAnswers, 4)
	assert.Zero(t, restored.SinceSnapshot)

	// Rebuilding from the snapshot replays nothing twice.
	f.rebuild()
	f.grade(t, "stu", sk.ID)
	p, err := f.cache.Get(ctx, "stu")
	require.NoError(t, err)
	assert.Len(t, p.RecentAnswers, 5)
}

func TestFocusSessionSurface(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.eng.StartFocusSession(ctx, session.StartRequest{
		StudentID: "stu", Topic: "fractions", TargetDurationSeconds: 600,
	})
	require.NoError(t, err)
	assert.Equal(t, session.StatusActive, s.Status)

	for n := 1; n <= 3; n++ {
		l, err := f.eng.StartLoop(ctx, s.ID, n)
		require.NoError(t, err)
		results := make([]session.ItemResult, l.Artifact.ItemCount())
		for i := range results {
			results[i] = session.ItemResult{ItemIndex: i, Correct: true, TimeSecs: 15}
		}
		_, err = f.eng.RecordLoopResults(ctx, s.ID, n, results)
		require.NoError(t, err)
		perf, err := f.eng.CompleteLoop(ctx, s.ID, n)
		require.NoError(t, err)
		assert.Equal(t, 1.0, perf.Accuracy)
		f.clk.Advance(2 * time.Minute)
	}

	b, err := f.eng.LoopBudget(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, b.LoopsRemaining)

	sum, err := f.eng.CompleteFocusSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, sum.Session.Status)
	assert.Equal(t, 3, sum.Performance.LoopsCompleted)
	require.NotNil(t, sum.ReviewPlan)
	assert.NotEmpty(t, sum.ReviewPlan.Reasoning)

	got, err := f.eng.FocusSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, got.Status)

	_, err = f.eng.CancelFocusSession(ctx, s.ID, "late")
	require.ErrorIs(t, err, apperr.ErrSessionTerminal)

	require.NotNil(t, spanNamed(f.spans.GetSpans(), "engine.CompleteFocusSession"))
}
