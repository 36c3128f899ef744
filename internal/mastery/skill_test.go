package mastery

import (
	"errors"
	"testing"

	"github.com/abhisek/focusloop/internal/apperr"
)

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		mastery float64
		want    Confidence
	}{
		{0, ConfidenceLow},
		{29.9, ConfidenceLow},
		{30, ConfidenceMedium},
		{70, ConfidenceMedium},
		{70.1, ConfidenceHigh},
		{100, ConfidenceHigh},
	}
	for _, tt := range tests {
		if got := ConfidenceFor(tt.mastery); got != tt.want {
			t.Errorf("ConfidenceFor(%v) = %q, want %q", tt.mastery, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := ClampMastery(-5); got != 0 {
		t.Errorf("ClampMastery(-5) = %v", got)
	}
	if got := ClampMastery(101); got != 100 {
		t.Errorf("ClampMastery(101) = %v", got)
	}
	if got := ClampDecayRate(0.01); got != MinDecayRate {
		t.Errorf("ClampDecayRate(0.01) = %v", got)
	}
	if got := ClampDecayRate(0.9); got != MaxDecayRate {
		t.Errorf("ClampDecayRate(0.9) = %v", got)
	}
	if got := ClampDecayRate(0.3); got != 0.3 {
		t.Errorf("ClampDecayRate(0.3) = %v", got)
	}
}

func TestSeedDecayRate(t *testing.T) {
	for cat, want := range map[string]float64{
		"factual":    0.25,
		"procedural": 0.15,
		"conceptual": 0.10,
		"":           DefaultDecayRate,
		"artistic":   DefaultDecayRate,
	} {
		if got := SeedDecayRate(cat); got != want {
			t.Errorf("SeedDecayRate(%q) = %v, want %v", cat, got, want)
		}
	}
}

func TestTypicalStyle(t *testing.T) {
	tests := []struct {
		name   string
		counts map[AnswerStyle]int
		want   AnswerStyle
	}{
		{"empty", nil, ""},
		{"argmax", map[AnswerStyle]int{StyleGuess: 4, StyleWorked: 2}, StyleGuess},
		{"tie prefers worked", map[AnswerStyle]int{StyleRushed: 2, StyleWorked: 2}, StyleWorked},
		{"tie guess over skip", map[AnswerStyle]int{StyleSkip: 1, StyleGuess: 1}, StyleGuess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypicalStyle(tt.counts); got != tt.want {
				t.Errorf("TypicalStyle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSkillCloneIsDeep(t *testing.T) {
	s := &Skill{ID: "a", StyleCounts: map[AnswerStyle]int{StyleWorked: 1}}
	c := s.Clone()
	c.StyleCounts[StyleWorked] = 9
	if s.StyleCounts[StyleWorked] != 1 {
		t.Error("Clone shares StyleCounts")
	}
}

func TestSkillRecordRoundTrip(t *testing.T) {
	s := &Skill{
		ID: "sk", StudentID: "stu", Domain: "fractions", Mastery: 72, DecayRate: 0.12,
		TotalAttempts: 4, CorrectAttempts: 3, TypicalAnswerStyle: StyleWorked,
		StyleCounts: map[AnswerStyle]int{StyleWorked: 3, StyleGuess: 1},
	}
	got := skillFromRecord(s.record())
	if got.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %q", got.Confidence)
	}
	if got.StyleCounts[StyleGuess] != 1 || got.Accuracy() != 0.75 {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestDifficulty(t *testing.T) {
	if DifficultyFor(10) != DifficultyEasy || DifficultyFor(50) != DifficultyMedium || DifficultyFor(71) != DifficultyHard {
		t.Error("DifficultyFor banding is wrong")
	}
	if DifficultyHard.Harder() != DifficultyHard || DifficultyEasy.Easier() != DifficultyEasy {
		t.Error("shift is not clamped")
	}
	if DifficultyEasy.Harder() != DifficultyMedium || DifficultyHard.Easier() != DifficultyMedium {
		t.Error("shift moves the wrong way")
	}
	if DifficultyEasy.Index() >= DifficultyMedium.Index() || DifficultyMedium.Index() >= DifficultyHard.Index() {
		t.Error("bands are not ordered")
	}

	d, err := ParseDifficulty("medium")
	if err != nil || d != DifficultyMedium {
		t.Errorf("ParseDifficulty(medium) = %q, %v", d, err)
	}
	for _, s := range []string{"", "impossible"} {
		if _, err := ParseDifficulty(s); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("ParseDifficulty(%q) err = %v", s, err)
		}
	}
}
