package diagnosis

import (
	"math/big"
	"strings"
)

// AnswerMatch is the outcome of comparing an answer with the expected one.
type AnswerMatch int

const (
	// MatchUnknown means the answer cannot be judged mechanically, e.g. it
	// is an explanation or there is no expected answer.
	MatchUnknown AnswerMatch = iota
	MatchCorrect
	MatchWrong
)

// MatchAnswer compares a learner's answer with the expected answer.
//
// Normalization rules:
//   - Whitespace is trimmed and collapsed
//   - Comparison is case-insensitive
//   - Numbers compare by value: "2/4" matches "1/2", "0.50" matches "1/2"
//     and "007" matches "7"
//
// Only a bare numeric answer that differs from a numeric expected answer is
// judged wrong; free text that does not match exactly is left unknown.
func MatchAnswer(answer, expected string) AnswerMatch {
	a, e := normalizeAnswer(answer), normalizeAnswer(expected)
	if a == "" || e == "" {
		return MatchUnknown
	}
	if a == e {
		return MatchCorrect
	}

	ar, aok := parseNumber(a)
	er, eok := parseNumber(e)
	if !aok || !eok {
		return MatchUnknown
	}
	if ar.Cmp(er) == 0 {
		return MatchCorrect
	}
	return MatchWrong
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// parseNumber accepts integers, decimals and a/b fractions.
func parseNumber(s string) (*big.Rat, bool) {
	s = strings.ReplaceAll(s, " ", "")
	if strings.Count(s, "/") == 1 {
		num, den, _ := strings.Cut(s, "/")
		// Rat.SetString accepts "a/b" but not decimal parts or a zero
		// denominator.
		if den == "" || strings.Trim(den, "0+-") == "" || num == "" {
			return nil, false
		}
	}
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}
