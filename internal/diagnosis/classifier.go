package diagnosis

import "github.com/abhisek/focusloop/internal/mastery"

// Classifier is a rule that recognizes an answer style from the shape of
// the answer. It returns ok=false when the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(req *EvaluateRequest) (style mastery.AnswerStyle, ok bool)
}

// DefaultClassifiers returns classifiers in priority order. A trivial
// answer is a skip even when it was also fast.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&TrivialAnswerClassifier{},
		&SpeedRushClassifier{},
	}
}

// RunClassifiers executes classifiers in order and returns the first match,
// or the worked style and "default" when no rule applies.
func RunClassifiers(classifiers []Classifier, req *EvaluateRequest) (mastery.AnswerStyle, string) {
	for _, c := range classifiers {
		if style, ok := c.Classify(req); ok {
			return style, c.Name()
		}
	}
	return mastery.StyleWorked, "default"
}
