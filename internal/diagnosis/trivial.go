package diagnosis

import (
	"strings"
	"unicode/utf8"

	"github.com/abhisek/focusloop/internal/mastery"
)

// TrivialAnswerMinRunes is the shortest answer (in runes, after trimming)
// that counts as an attempt.
const TrivialAnswerMinRunes = 2

var nonAnswers = map[string]bool{
	"?":            true,
	"idk":          true,
	"i dont know":  true,
	"i don't know": true,
	"dunno":        true,
	"no idea":      true,
	"pass":         true,
	"skip":         true,
	"n/a":          true,
}

// TrivialAnswerClassifier flags empty, very short and stock non-answers as
// skips.
type TrivialAnswerClassifier struct{}

func (c *TrivialAnswerClassifier) Name() string { return "trivial-answer" }

func (c *TrivialAnswerClassifier) Classify(req *EvaluateRequest) (mastery.AnswerStyle, bool) {
	a := strings.ToLower(strings.Join(strings.Fields(req.StudentAnswer), " "))
	if utf8.RuneCountInString(a) < TrivialAnswerMinRunes || nonAnswers[a] {
		return mastery.StyleSkip, true
	}
	return "", false
}
