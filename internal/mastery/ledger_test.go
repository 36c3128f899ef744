package mastery

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/store"
)

// fakeSkillRepo is an in-memory store.SkillRepo.
type fakeSkillRepo struct {
	mu      sync.Mutex
	skills  map[string]store.SkillRecord
	loads   int
	loadErr error
	saveErr error
}

func newFakeSkillRepo(recs ...store.SkillRecord) *fakeSkillRepo {
	r := &fakeSkillRepo{skills: make(map[string]store.SkillRecord)}
	for _, rec := range recs {
		r.skills[rec.ID] = rec
	}
	return r
}

func (r *fakeSkillRepo) LoadSkills(ctx context.Context, studentID string) ([]store.SkillRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	var out []store.SkillRecord
	for _, s := range r.skills {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}
	return out, ctx.Err()
}

func (r *fakeSkillRepo) SaveSkill(_ context.Context, rec store.SkillRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.skills[rec.ID] = rec
	return nil
}

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestLedger(repo *fakeSkillRepo) (*Ledger, *clock.Manual) {
	clk := clock.NewManual(t0)
	return NewLedger(repo, clk, nil), clk
}

func TestGetOrCreate(t *testing.T) {
	repo := newFakeSkillRepo()
	l, _ := newTestLedger(repo)
	ctx := context.Background()

	s, err := l.GetOrCreate(ctx, "stu", "fractions")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if s.Mastery != 0 || s.Confidence != ConfidenceLow || s.DecayRate != DefaultDecayRate {
		t.Errorf("unexpected new skill: %+v", s)
	}
	if !s.LastSeen.Equal(t0) {
		t.Errorf("LastSeen = %v, want %v", s.LastSeen, t0)
	}

	again, err := l.GetOrCreate(ctx, "stu", "fractions")
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if again.ID != s.ID {
		t.Errorf("second call created a new skill: %s != %s", again.ID, s.ID)
	}
	if _, ok := repo.skills[s.ID]; !ok {
		t.Error("new skill was not persisted")
	}
}

func TestGetOrCreateValidation(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	for _, tc := range []struct{ student, domain string }{{"", "fractions"}, {"stu", "  "}} {
		if _, err := l.GetOrCreate(context.Background(), tc.student, tc.domain); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("GetOrCreate(%q, %q) err = %v, want validation", tc.student, tc.domain, err)
		}
	}
}

func TestGetOrCreateConcurrentCreatesOnce(t *testing.T) {
	repo := newFakeSkillRepo()
	l, _ := newTestLedger(repo)

	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := l.GetOrCreate(context.Background(), "stu", "fractions")
			if err != nil {
				t.Errorf("GetOrCreate: %v", err)
				return
			}
			ids[i] = s.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids[1:] {
		if id != ids[0] {
			t.Fatalf("concurrent GetOrCreate returned different ids: %v", ids)
		}
	}
	if repo.loads != 1 {
		t.Errorf("store loads = %d, want 1", repo.loads)
	}
}

func TestSeedUsesCategoryDecay(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	skills, err := l.Seed(context.Background(), "stu", []SkillSeed{
		{Domain: "fractions", Category: "procedural", DisplayName: "Fractions"},
		{Domain: "place-value", Category: "conceptual"},
		{Domain: "times-tables", Category: "factual", DecayRate: 0.9},
	})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	want := []float64{0.15, 0.10, MaxDecayRate}
	for i, s := range skills {
		if !almostEqual(s.DecayRate, want[i]) {
			t.Errorf("%s decay = %f, want %f", s.Domain, s.DecayRate, want[i])
		}
	}
	if skills[1].DisplayName != "place-value" {
		t.Errorf("display name fallback = %q", skills[1].DisplayName)
	}

	if _, err := l.Seed(context.Background(), "stu", nil); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("empty seed err = %v", err)
	}
}

func TestApplyDelta(t *testing.T) {
	repo := newFakeSkillRepo()
	l, clk := newTestLedger(repo)
	ctx := context.Background()

	s, _ := l.GetOrCreate(ctx, "stu", "fractions")
	clk.Advance(time.Hour)

	got, err := l.ApplyDelta(ctx, "stu", s.ID, Update{
		MasteryDelta: 3, DecayRate: 0.18, Correct: true, AnswerStyle: StyleWorked, ResponseSeconds: 20,
	})
	if err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if got.Mastery != 3 || !almostEqual(got.DecayRate, 0.18) {
		t.Errorf("mastery/decay = %v/%v", got.Mastery, got.DecayRate)
	}
	if got.TotalAttempts != 1 || got.CorrectAttempts != 1 {
		t.Errorf("attempts = %d/%d", got.CorrectAttempts, got.TotalAttempts)
	}
	if got.TypicalAnswerStyle != StyleWorked {
		t.Errorf("typical style = %q", got.TypicalAnswerStyle)
	}
	if !got.LastSeen.Equal(t0.Add(time.Hour)) {
		t.Errorf("LastSeen = %v", got.LastSeen)
	}
	if got.AvgResponseSecs != 20 {
		t.Errorf("avg response = %v", got.AvgResponseSecs)
	}

	got, err = l.ApplyDelta(ctx, "stu", s.ID, Update{
		MasteryDelta: -2, Correct: false, AnswerStyle: StyleRushed, ResponseSeconds: 10,
	})
	if err != nil {
		t.Fatalf("ApplyDelta: %v", err)
	}
	if got.Mastery != 1 || got.TotalAttempts != 2 || got.CorrectAttempts != 1 {
		t.Errorf("after second update: %+v", got)
	}
	if !almostEqual(got.DecayRate, 0.18) {
		t.Errorf("zero DecayRate should keep current, got %v", got.DecayRate)
	}
	if got.AvgResponseSecs != 15 {
		t.Errorf("avg response = %v, want 15", got.AvgResponseSecs)
	}
	if repo.skills[s.ID].Mastery != 1 {
		t.Errorf("persisted mastery = %v", repo.skills[s.ID].Mastery)
	}
}

func TestApplyDeltaNotFound(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	ctx := context.Background()
	other, _ := l.GetOrCreate(ctx, "other", "fractions")

	_, err := l.ApplyDelta(ctx, "stu", other.ID, Update{MasteryDelta: 1})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for another student's skill", err)
	}
	_, err = l.ApplyDelta(ctx, "stu", "nope", Update{MasteryDelta: 1})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestApplyClampsUnderRandomSequences(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	ctx := context.Background()
	s, _ := l.GetOrCreate(ctx, "stu", "fractions")

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		u := Update{
			MasteryDelta: float64(rng.IntN(41) - 20),
			DecayRate:    rng.Float64() * 2,
			Correct:      rng.IntN(2) == 0,
		}
		got, err := l.ApplyDelta(ctx, "stu", s.ID, u)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got.Mastery < MinMastery || got.Mastery > MaxMastery {
			t.Fatalf("step %d: mastery %v out of range", i, got.Mastery)
		}
		if got.DecayRate < MinDecayRate || got.DecayRate > MaxDecayRate {
			t.Fatalf("step %d: decay %v out of range", i, got.DecayRate)
		}
		if got.Confidence != ConfidenceFor(got.Mastery) {
			t.Fatalf("step %d: confidence %q does not match mastery %v", i, got.Confidence, got.Mastery)
		}
	}
}

func TestApplyMapperOutputStaysClamped(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	ctx := context.Background()
	s, _ := l.GetOrCreate(ctx, "stu", "fractions")

	rng := rand.New(rand.NewPCG(7, 11))
	corr := []Correctness{Correct, Incorrect, Partial}
	conf := []Confidence{ConfidenceLow, ConfidenceMedium, ConfidenceHigh}
	for i := 0; i < 1000; i++ {
		cur, _ := l.Get(ctx, "stu", s.ID)
		a := attempt(corr[rng.IntN(3)], 1+rng.IntN(5), answerStyles[rng.IntN(len(answerStyles))], conf[rng.IntN(3)])
		d := MapToDelta(a, cur.DecayRate)
		got, err := l.ApplyDelta(ctx, "stu", s.ID, Update{MasteryDelta: float64(d.MasteryDelta), DecayRate: d.NewDecayRate})
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got.Mastery < 0 || got.Mastery > 100 || got.DecayRate < 0.05 || got.DecayRate > 0.5 {
			t.Fatalf("step %d: out of range %+v", i, got)
		}
	}
}

func TestApplyConcurrentSameSkillSerializes(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	ctx := context.Background()
	s, _ := l.GetOrCreate(ctx, "stu", "fractions")

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.ApplyDelta(ctx, "stu", s.ID, Update{MasteryDelta: 1, Correct: true}); err != nil {
				t.Errorf("ApplyDelta: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := l.Get(ctx, "stu", s.ID)
	if got.Mastery != 40 || got.TotalAttempts != 40 {
		t.Errorf("lost updates: mastery=%v attempts=%d", got.Mastery, got.TotalAttempts)
	}
}

func TestApplyAttemptConcurrentDecayUpdates(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	ctx := context.Background()
	s, _ := l.GetOrCreate(ctx, "stu", "fractions")

	expert := attempt(Correct, 5, StyleWorked, ConfidenceMedium)
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a := expert
			if _, err := l.Apply(ctx, "stu", s.ID, Update{Attempt: &a}); err != nil {
				t.Errorf("Apply: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := l.Get(ctx, "stu", s.ID)
	if !almostEqual(got.DecayRate, DefaultDecayRate-5*decayStep) {
		t.Errorf("decay = %v, want %v", got.DecayRate, DefaultDecayRate-5*decayStep)
	}
	if got.Mastery != 15 || got.CorrectAttempts != 5 || got.StyleCounts[StyleWorked] != 5 {
		t.Errorf("lost updates: %+v", got)
	}
}

func TestApplyAttemptReportsDelta(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	ctx := context.Background()
	s, _ := l.GetOrCreate(ctx, "stu", "fractions")

	a := attempt(Incorrect, 1, StyleGuess, ConfidenceLow)
	tr, err := l.Apply(ctx, "stu", s.ID, Update{Attempt: &a})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tr.Delta.MasteryDelta != 0 || !almostEqual(tr.Delta.NewDecayRate, DefaultDecayRate+decayPenalty) {
		t.Errorf("delta = %+v", tr.Delta)
	}
	if !almostEqual(tr.After.DecayRate, tr.Delta.NewDecayRate) || tr.After.CorrectAttempts != 0 {
		t.Errorf("after = %+v", tr.After)
	}

	bad := GradedAttempt{Correctness: "maybe", ReasoningQuality: 3, AnswerStyle: StyleWorked, ConfidenceLevel: ConfidenceLow}
	if _, err := l.Apply(ctx, "stu", s.ID, Update{Attempt: &bad}); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("invalid attempt err = %v", err)
	}
}

func TestLedgerLoadsPersistedSkills(t *testing.T) {
	repo := newFakeSkillRepo(store.SkillRecord{
		ID: "sk-1", StudentID: "stu", Domain: "fractions", Mastery: 120, DecayRate: 0.01, LastSeen: t0,
		StyleCounts: map[string]int{"rushed": 3, "worked": 1}, TypicalAnswerStyle: "rushed",
	})
	l, _ := newTestLedger(repo)

	skills, err := l.Skills(context.Background(), "stu")
	if err != nil {
		t.Fatalf("Skills: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("got %d skills", len(skills))
	}
	s := skills[0]
	if s.Mastery != 100 || s.DecayRate != MinDecayRate {
		t.Errorf("persisted values not clamped on load: %+v", s)
	}
	if s.StyleCounts[StyleRushed] != 3 {
		t.Errorf("style counts = %v", s.StyleCounts)
	}

	style, err := l.TypicalAnswerStyle(context.Background(), "stu", "fractions")
	if err != nil {
		t.Fatalf("TypicalAnswerStyle: %v", err)
	}
	if style != StyleRushed {
		t.Errorf("style = %q, want rushed", style)
	}
}

func TestLedgerLoadErrorIsUnavailable(t *testing.T) {
	repo := newFakeSkillRepo()
	repo.loadErr = errors.New("connection refused")
	l, _ := newTestLedger(repo)

	_, err := l.Skills(context.Background(), "stu")
	if !errors.Is(err, apperr.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestLedgerSaveFailureKeepsMemoryState(t *testing.T) {
	repo := newFakeSkillRepo()
	l, _ := newTestLedger(repo)
	ctx := context.Background()
	s, _ := l.GetOrCreate(ctx, "stu", "fractions")

	repo.saveErr = errors.New("disk full")
	got, err := l.ApplyDelta(ctx, "stu", s.ID, Update{MasteryDelta: 3})
	if err != nil {
		t.Fatalf("ApplyDelta should stay optimistic, got %v", err)
	}
	if got.Mastery != 3 {
		t.Errorf("mastery = %v", got.Mastery)
	}
	again, _ := l.Get(ctx, "stu", s.ID)
	if again.Mastery != 3 {
		t.Errorf("in-memory mastery = %v, want 3", again.Mastery)
	}
}

func TestSubtopicMastery(t *testing.T) {
	l, _ := newTestLedger(newFakeSkillRepo())
	ctx := context.Background()
	s, _ := l.GetOrCreate(ctx, "stu", "equivalent fractions")
	l.ApplyDelta(ctx, "stu", s.ID, Update{MasteryDelta: 40})

	got, err := l.SubtopicMastery(ctx, "stu", []string{"equivalent fractions", "unknown"})
	if err != nil {
		t.Fatalf("SubtopicMastery: %v", err)
	}
	if len(got) != 1 || got["equivalent fractions"] != 40 {
		t.Errorf("got %v", got)
	}
}
