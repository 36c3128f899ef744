package session

import (
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateLoop(t *testing.T) {
	tests := []struct {
		name        string
		results     []ItemResult
		accuracy    float64
		frustration float64
		engagement  float64
		completed   int
	}{
		{"empty", nil, 0, 0, 0, 0},
		{
			"steady and right",
			[]ItemResult{{Correct: true, TimeSecs: 20}, {Correct: true, TimeSecs: 20}},
			1, 0, 1, 2,
		},
		{
			"half wrong",
			[]ItemResult{{Correct: true, TimeSecs: 20}, {TimeSecs: 20}},
			0.5, 0.125, 1, 2,
		},
		{
			"skips",
			[]ItemResult{{Correct: true, TimeSecs: 10}, {Skipped: true, Correct: true, TimeSecs: 10}},
			0.5, 0.125, 0.5, 1,
		},
		{
			"hint rate capped",
			[]ItemResult{{Correct: true, TimeSecs: 5, HintsUsed: 10}},
			1, 0.5, 1, 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateLoop(tt.results, 3)
			assert.InDelta(t, tt.accuracy, got.Accuracy, 1e-9)
			assert.InDelta(t, tt.frustration, got.FrustrationLevel, 1e-9)
			assert.InDelta(t, tt.engagement, got.EngagementLevel, 1e-9)
			assert.Equal(t, tt.completed, got.ItemsCompleted)
		})
	}
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.Equal(t, 0.0, coefficientOfVariation(nil))
	assert.Equal(t, 0.0, coefficientOfVariation([]float64{0, 0}))
	assert.InDelta(t, 0.5, coefficientOfVariation([]float64{10, 30}), 1e-9)
}

func TestNextDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		current mastery.Difficulty
		perf    LoopPerformance
		want    mastery.Difficulty
	}{
		{"raise", mastery.DifficultyEasy, LoopPerformance{Accuracy: 0.8}, mastery.DifficultyMedium},
		{"hold", mastery.DifficultyMedium, LoopPerformance{Accuracy: 0.7}, ""},
		{"lower", mastery.DifficultyMedium, LoopPerformance{Accuracy: 0.5}, mastery.DifficultyEasy},
		{"frustration wins", mastery.DifficultyMedium, LoopPerformance{Accuracy: 1, FrustrationLevel: 0.6}, mastery.DifficultyEasy},
		{"clamped high", mastery.DifficultyHard, LoopPerformance{Accuracy: 0.9}, ""},
		{"clamped low", mastery.DifficultyEasy, LoopPerformance{Accuracy: 0.1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj := NextDifficulty(tt.current, tt.perf, cfg)
			if tt.want == "" {
				assert.Nil(t, adj)
				return
			}
			if assert.NotNil(t, adj) {
				assert.Equal(t, tt.current, adj.From)
				assert.Equal(t, tt.want, adj.To)
				assert.NotEmpty(t, adj.Reason)
			}
		})
	}
}

func TestRollMastery(t *testing.T) {
	assert.Equal(t, 40.0, rollMastery(0, false, 0.4, 0.5))
	assert.Equal(t, 70.0, rollMastery(40, true, 1, 0.5))
	assert.Equal(t, 20.0, rollMastery(40, true, 0, 0.5))
}

func TestSubtopicAccuracy(t *testing.T) {
	order, acc := subtopicAccuracy([]ItemResult{
		{Subtopic: "b", Correct: true},
		{Subtopic: "a"},
		{Subtopic: "b"},
		{Subtopic: ""},
		{Subtopic: "a", Correct: true, Skipped: true},
	})
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, 0.5, acc["b"])
	assert.Equal(t, 0.0, acc["a"])
}

func TestPickSubtopics(t *testing.T) {
	s := &Session{Topic: "fractions", SubtopicMastery: map[string]float64{}}
	assert.Equal(t, []string{"fractions"}, pickSubtopics(s, 2))

	s.ConceptMap = &contentgen.ConceptMap{Subtopics: []contentgen.Subtopic{
		{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"},
	}}
	s.SubtopicMastery = map[string]float64{"a": 90, "b": 40, "d": 40}
	assert.Equal(t, []string{"c", "b"}, pickSubtopics(s, 2))
	assert.Equal(t, []string{"c", "b", "d", "a"}, pickSubtopics(s, 10))
}

func TestBuildPerformance(t *testing.T) {
	start := time.Date(2026, 5, 4, 15, 0, 0, 0, time.UTC)
	s := &Session{
		StartTime: start,
		ConceptMap: &contentgen.ConceptMap{Subtopics: []contentgen.Subtopic{
			{Name: "a"}, {Name: "b"}, {Name: "c"},
		}},
		SubtopicMastery: map[string]float64{"a": 50, "b": 80},
		Loops: []*Loop{
			{
				Number: 1, Sealed: true,
				Performance: &LoopPerformance{Accuracy: 1, EngagementLevel: 1, FrustrationLevel: 0},
				Results:     []ItemResult{{Subtopic: "b", AnswerStyle: mastery.StyleGuess}},
			},
			{
				Number: 2, Sealed: true,
				Performance: &LoopPerformance{Accuracy: 0.5, EngagementLevel: 0.5, FrustrationLevel: 0.4},
				Results:     []ItemResult{{Subtopic: "a", AnswerStyle: mastery.StyleGuess}},
			},
			{Number: 3, Results: []ItemResult{{Subtopic: "c"}}},
		},
	}

	perf := BuildPerformance(s, start.Add(10*time.Minute), 70, mastery.StyleWorked)
	assert.Equal(t, 2, perf.LoopsCompleted)
	assert.InDelta(t, 0.75, perf.AverageAccuracy, 1e-9)
	assert.InDelta(t, 0.2, perf.AverageFrustration, 1e-9)
	assert.Equal(t, []string{"b"}, perf.MasteredConcepts)
	assert.Equal(t, []string{"a"}, perf.NeedingReview)
	assert.Equal(t, 600.0, perf.ElapsedSeconds)
	assert.Equal(t, mastery.StyleGuess, perf.TypicalAnswerStyle)

	empty := BuildPerformance(&Session{StartTime: start}, start, 70, mastery.StyleWorked)
	assert.NotNil(t, empty.MasteredConcepts)
	assert.NotNil(t, empty.NeedingReview)
	assert.Equal(t, mastery.StyleWorked, empty.TypicalAnswerStyle)
}
