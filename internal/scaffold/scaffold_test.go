package scaffold

import (
	"testing"

	"github.com/abhisek/focusloop/internal/mastery"
)

func calm() []mastery.AnswerRecord {
	return []mastery.AnswerRecord{
		{HintsUsed: 0, TimeSecs: 20},
		{HintsUsed: 1, TimeSecs: 25},
		{HintsUsed: 0, TimeSecs: 15},
	}
}

func struggling() []mastery.AnswerRecord {
	return []mastery.AnswerRecord{
		{HintsUsed: 3, TimeSecs: 20},
		{HintsUsed: 3, TimeSecs: 25},
		{HintsUsed: 3, TimeSecs: 15},
	}
}

func TestNextHint(t *testing.T) {
	s := New(DefaultConfig())
	tests := []struct {
		name       string
		attempt    int
		confidence mastery.Confidence
		recent     []mastery.AnswerRecord
		want       HintLevel
	}{
		{"first attempt confident", 1, mastery.ConfidenceMedium, calm(), HintNone},
		{"first attempt low confidence", 1, mastery.ConfidenceLow, calm(), HintNudge},
		{"second attempt", 2, mastery.ConfidenceHigh, calm(), HintStrategy},
		{"third attempt", 3, mastery.ConfidenceHigh, calm(), HintWalkthrough},
		{"fifth attempt", 5, mastery.ConfidenceLow, nil, HintWalkthrough},
		{"struggling first attempt", 1, mastery.ConfidenceMedium, struggling(), HintNudge},
		{"struggling low confidence", 1, mastery.ConfidenceLow, struggling(), HintStrategy},
		{"struggling second attempt", 2, mastery.ConfidenceLow, struggling(), HintWalkthrough},
		{"struggling clamps", 3, mastery.ConfidenceLow, struggling(), HintWalkthrough},
		{"no attempt", 0, mastery.ConfidenceLow, struggling(), HintNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.NextHint(tt.attempt, tt.confidence, tt.recent); got != tt.want {
				t.Errorf("NextHint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextHintClampsToAvailableHints(t *testing.T) {
	s := New(Config{MaxHints: 2})
	if got := s.NextHint(4, mastery.ConfidenceLow, nil); got != HintStrategy {
		t.Errorf("NextHint = %v, want %v", got, HintStrategy)
	}
	if got := s.NextHint(2, mastery.ConfidenceLow, struggling()); got != HintStrategy {
		t.Errorf("struggling NextHint = %v, want %v", got, HintStrategy)
	}
}

func TestSlowAnswersCountAsStruggling(t *testing.T) {
	s := New(DefaultConfig())
	slow := []mastery.AnswerRecord{{TimeSecs: 70}, {TimeSecs: 65}, {TimeSecs: 61}}
	if !s.Struggling(slow) {
		t.Fatal("mean time above 60s should be struggling")
	}
	exact := []mastery.AnswerRecord{{TimeSecs: 60}, {TimeSecs: 60}, {TimeSecs: 60}}
	if s.Struggling(exact) {
		t.Fatal("mean time of exactly 60s is not struggling")
	}
}

func TestWorkedExampleEligible(t *testing.T) {
	s := New(DefaultConfig())
	tests := []struct {
		attempt int
		recent  []mastery.AnswerRecord
		want    bool
	}{
		{1, calm(), false},
		{2, calm(), false},
		{3, calm(), true},
		{1, struggling(), false},
		{2, struggling(), true},
	}
	for _, tt := range tests {
		if got := s.WorkedExampleEligible(tt.attempt, tt.recent); got != tt.want {
			t.Errorf("WorkedExampleEligible(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestIntensity(t *testing.T) {
	s := New(DefaultConfig())
	tests := []struct {
		mastery float64
		recent  []mastery.AnswerRecord
		want    Intensity
	}{
		{10, calm(), IntensityHigh},
		{29.9, calm(), IntensityHigh},
		{30, calm(), IntensityMedium},
		{69, calm(), IntensityMedium},
		{70, calm(), IntensityLow},
		{95, struggling(), IntensityHigh},
	}
	for _, tt := range tests {
		if got := s.Intensity(tt.mastery, tt.recent); got != tt.want {
			t.Errorf("Intensity(%v) = %q, want %q", tt.mastery, got, tt.want)
		}
	}
}

func TestHintLevelString(t *testing.T) {
	if HintWalkthrough.String() != "walkthrough" || HintNone.String() != "none" || HintLevel(9).String() != "unknown" {
		t.Error("unexpected HintLevel names")
	}
}
