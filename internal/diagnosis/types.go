// Package diagnosis evaluates learner answers into graded attempts, with an
// LLM evaluator backed by rule-based heuristics.
package diagnosis

import (
	"context"
	"strings"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
)

// Evaluator grades one answer.
type Evaluator interface {
	EvaluateAttempt(ctx context.Context, req EvaluateRequest) (*Evaluation, error)
}

// EvaluateRequest holds the answer and the skill context it was given in.
type EvaluateRequest struct {
	StudentID     string
	SkillID       string
	Domain        string
	Category      string
	QuestionText  string
	StudentAnswer string
	// ExpectedAnswer is optional; open questions have none.
	ExpectedAnswer string
	TimeSecs       float64
	HintsUsed      int
	SkillMastery   float64
	SkillAccuracy  float64 // historical accuracy for this skill (0.0-1.0)
}

// Validate rejects requests missing the question or with negative timing.
func (r EvaluateRequest) Validate() error {
	if strings.TrimSpace(r.QuestionText) == "" {
		return apperr.Invalid("question text is required")
	}
	if r.TimeSecs < 0 {
		return apperr.Invalid("time seconds must not be negative, got %v", r.TimeSecs)
	}
	if r.HintsUsed < 0 {
		return apperr.Invalid("hints used must not be negative, got %d", r.HintsUsed)
	}
	return nil
}

// Evaluation is a graded attempt and the evaluator that produced it.
type Evaluation struct {
	mastery.GradedAttempt
	Evaluator string `json:"evaluator"` // "llm" or the heuristic classifier name
}
