package mastery

import (
	"errors"
	"math"
	"testing"

	"github.com/abhisek/focusloop/internal/apperr"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func attempt(c Correctness, rq int, style AnswerStyle, conf Confidence) GradedAttempt {
	return GradedAttempt{Correctness: c, ReasoningQuality: rq, AnswerStyle: style, ConfidenceLevel: conf}
}

func TestMapToDelta_Table(t *testing.T) {
	tests := []struct {
		name  string
		a     GradedAttempt
		delta int
	}{
		{"correct expert", attempt(Correct, 5, StyleWorked, ConfidenceMedium), 3},
		{"correct rq4", attempt(Correct, 4, StyleWorked, ConfidenceLow), 3},
		{"correct rq3", attempt(Correct, 3, StyleWorked, ConfidenceLow), 2},
		{"correct rq2", attempt(Correct, 2, StyleRushed, ConfidenceLow), 2},
		{"correct guess", attempt(Correct, 1, StyleGuess, ConfidenceLow), 0},
		{"partial rq3", attempt(Partial, 3, StyleWorked, ConfidenceMedium), 0},
		{"partial rq5", attempt(Partial, 5, StyleWorked, ConfidenceMedium), 0},
		{"partial rq2", attempt(Partial, 2, StyleWorked, ConfidenceMedium), -1},
		{"partial guess", attempt(Partial, 1, StyleGuess, ConfidenceMedium), 0},
		{"incorrect confident rq1", attempt(Incorrect, 1, StyleWorked, ConfidenceHigh), -3},
		{"incorrect confident rq2", attempt(Incorrect, 2, StyleWorked, ConfidenceHigh), -3},
		{"incorrect confident rq3", attempt(Incorrect, 3, StyleWorked, ConfidenceHigh), -1},
		{"incorrect tried", attempt(Incorrect, 4, StyleWorked, ConfidenceMedium), -1},
		{"incorrect rq2", attempt(Incorrect, 2, StyleWorked, ConfidenceMedium), -2},
		{"incorrect guess", attempt(Incorrect, 1, StyleGuess, ConfidenceLow), 0},
		{"skip correct expert", attempt(Correct, 5, StyleSkip, ConfidenceHigh), 0},
		{"skip incorrect confident", attempt(Incorrect, 1, StyleSkip, ConfidenceHigh), 0},
		{"skip partial", attempt(Partial, 2, StyleSkip, ConfidenceLow), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToDelta(tt.a, 0.2)
			if got.MasteryDelta != tt.delta {
				t.Errorf("MasteryDelta = %d, want %d", got.MasteryDelta, tt.delta)
			}
		})
	}
}

func TestMapToDelta_DecayRate(t *testing.T) {
	tests := []struct {
		name  string
		a     GradedAttempt
		decay float64
		want  float64
	}{
		{"expert success stabilizes", attempt(Correct, 4, StyleWorked, ConfidenceMedium), 0.20, 0.18},
		{"floor", attempt(Correct, 5, StyleWorked, ConfidenceMedium), 0.06, 0.05},
		{"plain success unchanged", attempt(Correct, 3, StyleWorked, ConfidenceMedium), 0.20, 0.20},
		{"low quality error speeds decay", attempt(Incorrect, 2, StyleWorked, ConfidenceMedium), 0.20, 0.21},
		{"guess error speeds decay", attempt(Incorrect, 1, StyleGuess, ConfidenceLow), 0.20, 0.21},
		{"cap", attempt(Incorrect, 1, StyleWorked, ConfidenceHigh), 0.50, 0.50},
		{"tried error unchanged", attempt(Incorrect, 3, StyleWorked, ConfidenceMedium), 0.20, 0.20},
		{"partial unchanged", attempt(Partial, 2, StyleWorked, ConfidenceMedium), 0.30, 0.30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapToDelta(tt.a, tt.decay)
			if !almostEqual(got.NewDecayRate, tt.want) {
				t.Errorf("NewDecayRate = %f, want %f", got.NewDecayRate, tt.want)
			}
		})
	}
}

func TestGradedAttemptValidate(t *testing.T) {
	valid := attempt(Correct, 3, StyleWorked, ConfidenceMedium)
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid attempt: %v", err)
	}

	bad := []GradedAttempt{
		attempt("maybe", 3, StyleWorked, ConfidenceMedium),
		attempt(Correct, 0, StyleWorked, ConfidenceMedium),
		attempt(Correct, 6, StyleWorked, ConfidenceMedium),
		attempt(Correct, 3, "doodle", ConfidenceMedium),
		attempt(Correct, 3, StyleWorked, "certain"),
	}
	for i, a := range bad {
		if err := a.Validate(); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("case %d: err = %v, want validation error", i, err)
		}
	}
}

func TestNoteReasons(t *testing.T) {
	tests := []struct {
		name     string
		a        GradedAttempt
		avg      float64
		response float64
		want     []NoteKind
	}{
		{"quiet", attempt(Correct, 4, StyleWorked, ConfidenceMedium), 20, 22, nil},
		{"misconception", GradedAttempt{Correctness: Partial, ReasoningQuality: 3, AnswerStyle: StyleWorked, ConfidenceLevel: ConfidenceLow, MisunderstandingLabel: "denominator-addition"}, 20, 20, []NoteKind{NoteMisconception}},
		{"too fast", attempt(Correct, 4, StyleWorked, ConfidenceMedium), 20, 9, []NoteKind{NoteAttentionAnomaly}},
		{"too slow", attempt(Correct, 4, StyleWorked, ConfidenceMedium), 20, 31, []NoteKind{NoteAttentionAnomaly}},
		{"exactly half is fine", attempt(Correct, 4, StyleWorked, ConfidenceMedium), 20, 30, nil},
		{"no history", attempt(Correct, 4, StyleWorked, ConfidenceMedium), 0, 300, nil},
		{"confident error", attempt(Incorrect, 4, StyleWorked, ConfidenceHigh), 20, 20, []NoteKind{NoteConfidentError}},
		{
			"all three",
			GradedAttempt{Correctness: Incorrect, ReasoningQuality: 2, AnswerStyle: StyleRushed, ConfidenceLevel: ConfidenceHigh, MisunderstandingLabel: "sign-error"},
			30, 3,
			[]NoteKind{NoteMisconception, NoteAttentionAnomaly, NoteConfidentError},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NoteReasons(tt.a, tt.avg, tt.response)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d reasons (%+v), want %v", len(got), got, tt.want)
			}
			for i := range got {
				if got[i].Kind != tt.want[i] {
					t.Errorf("reason[%d] = %q, want %q", i, got[i].Kind, tt.want[i])
				}
				if got[i].Detail == "" {
					t.Errorf("reason[%d] has empty detail", i)
				}
			}
		})
	}
}
