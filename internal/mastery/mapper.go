package mastery

import (
	"github.com/abhisek/focusloop/internal/apperr"
)

// Correctness of an evaluated answer.
type Correctness string

const (
	Correct   Correctness = "correct"
	Incorrect Correctness = "incorrect"
	Partial   Correctness = "partial"
)

// Valid reports whether c is a known correctness value.
func (c Correctness) Valid() bool {
	switch c {
	case Correct, Incorrect, Partial:
		return true
	}
	return false
}

// GradedAttempt is the evaluation of one answer.
type GradedAttempt struct {
	Correctness           Correctness `json:"correctness"`
	ReasoningQuality      int         `json:"reasoning_quality"` // 1 guess .. 5 expert explanation
	AnswerStyle           AnswerStyle `json:"answer_style"`
	ConfidenceLevel       Confidence  `json:"confidence_level"`
	MisunderstandingLabel string      `json:"misunderstanding_label,omitempty"`
	Feedback              string      `json:"feedback,omitempty"`
}

// Validate checks every field is in range.
func (a GradedAttempt) Validate() error {
	if !a.Correctness.Valid() {
		return apperr.Invalid("unknown correctness %q", a.Correctness)
	}
	if a.ReasoningQuality < 1 || a.ReasoningQuality > 5 {
		return apperr.Invalid("reasoning quality %d outside [1,5]", a.ReasoningQuality)
	}
	if !a.AnswerStyle.Valid() {
		return apperr.Invalid("unknown answer style %q", a.AnswerStyle)
	}
	if !a.ConfidenceLevel.Valid() {
		return apperr.Invalid("unknown confidence level %q", a.ConfidenceLevel)
	}
	return nil
}

// Delta is the effect of one graded attempt on a skill.
type Delta struct {
	MasteryDelta int
	NewDecayRate float64
}

const (
	decayStep     = 0.02
	decayPenalty  = 0.01
	expertQuality = 4
)

// MapToDelta converts a graded attempt into a mastery delta and the skill's
// next decay rate.
func MapToDelta(a GradedAttempt, decayRate float64) Delta {
	return Delta{
		MasteryDelta: masteryDelta(a),
		NewDecayRate: nextDecayRate(a, decayRate),
	}
}

func masteryDelta(a GradedAttempt) int {
	rq := a.ReasoningQuality
	switch {
	case a.AnswerStyle == StyleSkip:
		return 0
	case a.Correctness == Correct:
		if rq == 1 {
			return 0 // lucky guess
		}
		if rq >= expertQuality {
			return 3
		}
		return 2
	case a.Correctness == Incorrect && a.ConfidenceLevel == ConfidenceHigh && rq <= 2:
		// A confident wrong answer is a misconception, not a guess.
		return -3
	case rq == 1:
		return 0
	case a.Correctness == Partial:
		if rq >= 3 {
			return 0
		}
		return -1
	default: // incorrect
		if rq >= 3 {
			return -1
		}
		return -2
	}
}

func nextDecayRate(a GradedAttempt, decayRate float64) float64 {
	switch {
	case a.Correctness == Correct && a.ReasoningQuality >= expertQuality:
		return ClampDecayRate(decayRate - decayStep)
	case a.Correctness == Incorrect && a.ReasoningQuality <= 2:
		return ClampDecayRate(decayRate + decayPenalty)
	default:
		return ClampDecayRate(decayRate)
	}
}
