package diagnosis

import (
	"context"
	"strings"

	"github.com/abhisek/focusloop/internal/mastery"
)

// HeuristicEvaluator grades without a model. It judges correctness only when
// the answer can be matched mechanically against the expected answer;
// otherwise the answer is partial with middling reasoning quality and only
// the answer style varies.
type HeuristicEvaluator struct {
	classifiers []Classifier
}

// NewHeuristic creates a HeuristicEvaluator with the default classifiers.
func NewHeuristic() *HeuristicEvaluator {
	return &HeuristicEvaluator{classifiers: DefaultClassifiers()}
}

func (h *HeuristicEvaluator) EvaluateAttempt(_ context.Context, req EvaluateRequest) (*Evaluation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	style, name := RunClassifiers(h.classifiers, &req)
	ga := mastery.GradedAttempt{
		Correctness:      mastery.Partial,
		ReasoningQuality: 3,
		AnswerStyle:      style,
		ConfidenceLevel:  mastery.ConfidenceMedium,
		Feedback:         heuristicFeedback[style],
	}
	if style == mastery.StyleSkip {
		return &Evaluation{GradedAttempt: ga, Evaluator: "heuristic/" + name}, nil
	}

	// A bare answer shows no reasoning either way.
	switch MatchAnswer(req.StudentAnswer, req.ExpectedAnswer) {
	case MatchCorrect:
		ga.Correctness, ga.ReasoningQuality, ga.Feedback = mastery.Correct, 2, "Correct."
	case MatchWrong:
		ga.Correctness, ga.ReasoningQuality = mastery.Incorrect, 2
		ga.Feedback = "Not quite. The expected answer is " + strings.TrimSpace(req.ExpectedAnswer) + "."
	default:
		return &Evaluation{GradedAttempt: ga, Evaluator: "heuristic/" + name}, nil
	}
	if name == "default" {
		name = "answer-check"
	}
	return &Evaluation{GradedAttempt: ga, Evaluator: "heuristic/" + name}, nil
}

var heuristicFeedback = map[mastery.AnswerStyle]string{
	mastery.StyleSkip:   "No answer recorded. Give it a try next time, even a partial idea helps.",
	mastery.StyleRushed: "That was quick. Take a moment to check your reasoning.",
	mastery.StyleWorked: "Answer recorded.",
}
