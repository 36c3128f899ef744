package spacedrep

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fractionsSession(modality contentgen.Modality) *session.Session {
	return &session.Session{
		Topic:             "fractions",
		Modality:          modality,
		CurrentDifficulty: mastery.DifficultyMedium,
		ConceptMap: &contentgen.ConceptMap{Topic: "fractions", Subtopics: []contentgen.Subtopic{
			{Name: "equal parts"},
			{Name: "numerators", Prerequisites: []string{"equal parts"}},
			{Name: "equivalent", Prerequisites: []string{"numerators"}},
			{Name: "comparing", Prerequisites: []string{"equal parts"}},
			{Name: "adding", Prerequisites: []string{"equal parts"}},
			{Name: "mixed numbers", Prerequisites: []string{"adding"}},
		}},
		SubtopicMastery: map[string]float64{"equal parts": 100, "numerators": 40},
		Loops: []*session.Loop{
			{Number: 1, Artifact: &contentgen.Artifact{Modality: modality}},
			{Number: 2, Artifact: &contentgen.Artifact{Modality: modality}},
			{Number: 3, Artifact: &contentgen.Artifact{Modality: modality}},
		},
	}
}

func TestPlan(t *testing.T) {
	s := fractionsSession(contentgen.ModalityQuiz)
	perf := &session.SessionPerformance{
		AverageAccuracy:    0.8,
		MasteredConcepts:   []string{"equal parts"},
		NeedingReview:      []string{"numerators"},
		ElapsedSeconds:     20 * 60,
		LoopsCompleted:     3,
		TypicalAnswerStyle: mastery.StyleWorked,
	}
	now := time.Date(2026, 5, 4, 16, 0, 0, 0, time.UTC)

	plan := NewPlanner(Config{}).Plan(s, perf, now)
	assert.Equal(t, []string{"numerators"}, plan.ReviewSubtopics)
	assert.Equal(t, []string{"comparing", "adding"}, plan.NewSubtopics, "equivalent waits on numerators")
	assert.Equal(t, contentgen.ModalityFlashcards, plan.RecommendedModality)
	assert.Equal(t, mastery.DifficultyMedium, plan.TargetDifficulty)
	assert.InDelta(t, 8.0, plan.EstimatedMasteryGain, 1e-9)
	assert.True(t, strings.Contains(plan.Reasoning, "Review numerators."), plan.Reasoning)

	require.Len(t, plan.DueItems, 2)
	assert.Equal(t, "numerators", plan.DueItems[0].Subtopic)
	assert.Equal(t, 0, plan.DueItems[0].Stage)
	assert.Equal(t, now.AddDate(0, 0, 1), plan.DueItems[0].DueAt)
	assert.Equal(t, "equal parts", plan.DueItems[1].Subtopic)
	assert.Equal(t, MaxStage, plan.DueItems[1].Stage)
	assert.Equal(t, 60, plan.DueItems[1].IntervalDays)
}

func TestPlanGainCapped(t *testing.T) {
	s := fractionsSession(contentgen.ModalityQuiz)
	perf := &session.SessionPerformance{AverageAccuracy: 1, ElapsedSeconds: 3600}
	plan := NewPlanner(DefaultConfig()).Plan(s, perf, time.Now())
	assert.Equal(t, 15.0, plan.EstimatedMasteryGain)
	assert.NotNil(t, plan.ReviewSubtopics)
	assert.Empty(t, plan.DueItems)
}

func TestPlanModalityRotation(t *testing.T) {
	tests := []struct {
		used  contentgen.Modality
		style mastery.AnswerStyle
		want  contentgen.Modality
	}{
		{contentgen.ModalityQuiz, mastery.StyleWorked, contentgen.ModalityFlashcards},
		{contentgen.ModalityFlashcards, mastery.StyleWorked, contentgen.ModalityMicroGame},
		{contentgen.ModalityMicroGame, mastery.StyleSkip, contentgen.ModalityQuiz},
		{contentgen.ModalityExplain, mastery.StyleWorked, contentgen.ModalityQuiz},
		{contentgen.ModalityQuiz, mastery.StyleGuess, contentgen.ModalityExplain},
		{contentgen.ModalityFlashcards, mastery.StyleRushed, contentgen.ModalityExplain},
	}
	for _, tt := range tests {
		t.Run(string(tt.used)+"/"+string(tt.style), func(t *testing.T) {
			s := fractionsSession(tt.used)
			perf := &session.SessionPerformance{TypicalAnswerStyle: tt.style}
			plan := NewPlanner(DefaultConfig()).Plan(s, perf, time.Now())
			assert.Equal(t, tt.want, plan.RecommendedModality)
		})
	}
}

func TestPlanWithoutConceptMap(t *testing.T) {
	s := &session.Session{Topic: "knots", Modality: contentgen.ModalityQuiz, SubtopicMastery: map[string]float64{"knots": 80}}
	perf := &session.SessionPerformance{MasteredConcepts: []string{"knots"}}
	plan := NewPlanner(DefaultConfig()).Plan(s, perf, time.Now())
	assert.Empty(t, plan.NewSubtopics)
	require.Len(t, plan.DueItems, 1)
	assert.Equal(t, 2, plan.DueItems[0].Stage)
}
