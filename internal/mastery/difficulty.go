package mastery

import "github.com/abhisek/focusloop/internal/apperr"

// Difficulty is a totally ordered band: easy < medium < hard.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var difficultyOrder = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// DifficultyFor bands a mastery value: below 30 easy, above 70 hard.
func DifficultyFor(mastery float64) Difficulty {
	switch {
	case mastery < lowBandCeiling:
		return DifficultyEasy
	case mastery > highBandFloor:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// ParseDifficulty validates s. An empty string is a validation error.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if d.Index() < 0 {
		return "", apperr.Invalid("unknown difficulty %q", s)
	}
	return d, nil
}

// Index returns the position of d in the band order, or -1.
func (d Difficulty) Index() int {
	for i, b := range difficultyOrder {
		if b == d {
			return i
		}
	}
	return -1
}

// Harder returns the next band up, clamped at hard.
func (d Difficulty) Harder() Difficulty {
	return d.shift(1)
}

// Easier returns the next band down, clamped at easy.
func (d Difficulty) Easier() Difficulty {
	return d.shift(-1)
}

func (d Difficulty) shift(by int) Difficulty {
	i := d.Index()
	if i < 0 {
		return d
	}
	i = min(max(i+by, 0), len(difficultyOrder)-1)
	return difficultyOrder[i]
}
