package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/store"
)

func answers(pairs ...[2]float64) []AnswerRecord {
	out := make([]AnswerRecord, len(pairs))
	for i, p := range pairs {
		out[i] = AnswerRecord{HintsUsed: int(p[0]), TimeSecs: p[1]}
	}
	return out
}

func TestStruggling(t *testing.T) {
	th := DefaultStruggleThresholds()
	tests := []struct {
		name   string
		recent []AnswerRecord
		want   bool
	}{
		{"empty", nil, false},
		{"calm", answers([2]float64{0, 20}, [2]float64{1, 30}, [2]float64{0, 25}), false},
		{"hint heavy", answers([2]float64{3, 20}, [2]float64{3, 20}, [2]float64{2, 20}), true},
		{"exactly two hints", answers([2]float64{2, 20}, [2]float64{2, 20}, [2]float64{2, 20}), false},
		{"slow", answers([2]float64{0, 90}, [2]float64{0, 70}, [2]float64{0, 30}), true},
		{"only the tail counts", answers([2]float64{9, 300}, [2]float64{0, 10}, [2]float64{0, 10}, [2]float64{0, 10}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Struggling(tt.recent, th); got != tt.want {
				t.Errorf("Struggling = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPerformanceStateWindow(t *testing.T) {
	for in, want := range map[int]int{0: 10, 1: 5, 12: 12, 50: 20} {
		if got := NewPerformanceState("s", in).Window; got != want {
			t.Errorf("window(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPerformanceRecord(t *testing.T) {
	p := NewPerformanceState("stu", 5)
	th := DefaultStruggleThresholds()

	for i := 0; i < 7; i++ {
		p.Record(AnswerRecord{SkillID: "sk", Correct: i%2 == 0, TimeSecs: 10}, float64(i*10), th)
	}
	if len(p.RecentAnswers) != 5 {
		t.Fatalf("window not enforced: %d answers", len(p.RecentAnswers))
	}
	// Last five: i=2..6 -> correct at 2, 4, 6.
	if !almostEqual(p.AccuracyRate, 0.6) {
		t.Errorf("accuracy = %v, want 0.6", p.AccuracyRate)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", p.CurrentStreak)
	}
	if p.MasteryLevel != 60 || p.CurrentDifficulty != DifficultyMedium {
		t.Errorf("mastery/difficulty = %v/%q", p.MasteryLevel, p.CurrentDifficulty)
	}

	for i := 0; i < 3; i++ {
		p.Record(AnswerRecord{SkillID: "sk", HintsUsed: 3, TimeSecs: 80}, 20, th)
	}
	want := map[string]bool{IndicatorHintHeavy: true, IndicatorSlow: true, IndicatorErrorStreak: true, IndicatorLowAccuracy: true}
	if len(p.StrugglingIndicators) != len(want) {
		t.Fatalf("indicators = %v", p.StrugglingIndicators)
	}
	for _, ind := range p.StrugglingIndicators {
		if !want[ind] {
			t.Errorf("unexpected indicator %q", ind)
		}
	}
	if !p.Struggling(th) {
		t.Error("state should be struggling")
	}
}

func TestPerformanceSnapshotReplay(t *testing.T) {
	th := DefaultStruggleThresholds()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	events := []store.GradeEventData{
		{Sequence: 3, SkillID: "sk", Correctness: "correct", TimeSecs: 12, NewMastery: 3, Timestamp: base},
		{Sequence: 5, SkillID: "sk", Correctness: "incorrect", TimeSecs: 40, HintsUsed: 1, NewMastery: 1, Timestamp: base.Add(time.Minute)},
	}

	live := NewPerformanceState("stu", 10)
	live.Replay(events[:1], th)

	snap, err := live.Snapshot(base)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("snapshot sequence = %d, want 3", snap.Sequence)
	}

	restored, err := RestorePerformance(snap)
	if err != nil {
		t.Fatalf("RestorePerformance: %v", err)
	}
	restored.Replay(events[1:], th)
	live.Replay(events[1:], th)

	if restored.LastEventSequence != 5 || restored.AccuracyRate != live.AccuracyRate || restored.CurrentStreak != live.CurrentStreak {
		t.Errorf("restored state diverged: %+v vs %+v", restored, live)
	}
	if len(restored.RecentAnswers) != 2 {
		t.Errorf("recent answers = %d", len(restored.RecentAnswers))
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	got, err := c.Get(ctx, "stu")
	if err != nil || got != nil {
		t.Fatalf("empty cache Get = %v, %v", got, err)
	}

	p := NewPerformanceState("stu", 10)
	p.Record(AnswerRecord{Correct: true}, 2, DefaultStruggleThresholds())
	if err := c.Put(ctx, p); err != nil {
		t.Fatalf("Put: %v", err)
	}
	p.RecentAnswers[0].Correct = false

	got, _ = c.Get(ctx, "stu")
	if got == nil || !got.RecentAnswers[0].Correct {
		t.Error("cache did not store a copy")
	}
}
