package mastery

import (
	"maps"
	"time"

	"github.com/abhisek/focusloop/internal/store"
)

// Bounds for skill fields.
const (
	MinMastery   = 0.0
	MaxMastery   = 100.0
	MinDecayRate = 0.05
	MaxDecayRate = 0.50

	// DefaultDecayRate seeds skills whose category has no specific rate.
	DefaultDecayRate = 0.20

	// Band edges shared by confidence and difficulty banding.
	lowBandCeiling = 30.0
	highBandFloor  = 70.0
)

// Confidence is a coarse band over a mastery value or a learner's own
// certainty in an answer.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Valid reports whether c is a known confidence level.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// AnswerStyle describes how a learner produced an answer.
type AnswerStyle string

const (
	StyleGuess  AnswerStyle = "guess"
	StyleSkip   AnswerStyle = "skip"
	StyleWorked AnswerStyle = "worked"
	StyleRushed AnswerStyle = "rushed"
)

// answerStyles in tie-break order for typical style selection.
var answerStyles = []AnswerStyle{StyleWorked, StyleGuess, StyleRushed, StyleSkip}

// Valid reports whether s is a known answer style.
func (s AnswerStyle) Valid() bool {
	switch s {
	case StyleGuess, StyleSkip, StyleWorked, StyleRushed:
		return true
	}
	return false
}

// NeedsExplanation reports whether the style calls for formats that force
// the learner to explain their reasoning.
func (s AnswerStyle) NeedsExplanation() bool {
	return s == StyleGuess || s == StyleRushed
}

// Skill is a student's mastery record for one domain.
type Skill struct {
	ID                 string              `json:"id"`
	StudentID          string              `json:"student_id"`
	Domain             string              `json:"domain"`
	Category           string              `json:"category"`
	DisplayName        string              `json:"display_name"`
	Mastery            float64             `json:"mastery"`
	Confidence         Confidence          `json:"confidence"`
	LastSeen           time.Time           `json:"last_seen"`
	DecayRate          float64             `json:"decay_rate"`
	TotalAttempts      int                 `json:"total_attempts"`
	CorrectAttempts    int                 `json:"correct_attempts"`
	TypicalAnswerStyle AnswerStyle         `json:"typical_answer_style,omitempty"`
	StyleCounts        map[AnswerStyle]int `json:"style_counts,omitempty"`
	AvgResponseSecs    float64             `json:"avg_response_secs"`
}

// Clone returns a deep copy.
func (s *Skill) Clone() *Skill {
	c := *s
	c.StyleCounts = maps.Clone(s.StyleCounts)
	return &c
}

// Accuracy returns the fraction of correct attempts, or 0 without attempts.
func (s *Skill) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAttempts) / float64(s.TotalAttempts)
}

// ConfidenceFor derives the confidence band of a mastery value.
func ConfidenceFor(mastery float64) Confidence {
	switch {
	case mastery < lowBandCeiling:
		return ConfidenceLow
	case mastery > highBandFloor:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}

// ClampMastery limits v to [MinMastery, MaxMastery].
func ClampMastery(v float64) float64 {
	return clamp(v, MinMastery, MaxMastery)
}

// ClampDecayRate limits v to [MinDecayRate, MaxDecayRate].
func ClampDecayRate(v float64) float64 {
	return clamp(v, MinDecayRate, MaxDecayRate)
}

// categoryDecayRates seeds new skills. Facts fade fastest, concepts slowest.
var categoryDecayRates = map[string]float64{
	"factual":    0.25,
	"procedural": 0.15,
	"conceptual": 0.10,
}

// SeedDecayRate returns the initial decay rate for a skill category.
func SeedDecayRate(category string) float64 {
	if r, ok := categoryDecayRates[category]; ok {
		return r
	}
	return DefaultDecayRate
}

// TypicalStyle returns the most frequent style. Ties go to worked, then
// guess, rushed and skip. Empty counts yield "".
func TypicalStyle(counts map[AnswerStyle]int) AnswerStyle {
	var (
		best  AnswerStyle
		bestN int
	)
	for _, s := range answerStyles {
		if n := counts[s]; n > bestN {
			best, bestN = s, n
		}
	}
	return best
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func skillFromRecord(r store.SkillRecord) *Skill {
	s := &Skill{
		ID:                 r.ID,
		StudentID:          r.StudentID,
		Domain:             r.Domain,
		Category:           r.Category,
		DisplayName:        r.DisplayName,
		Mastery:            ClampMastery(r.Mastery),
		LastSeen:           r.LastSeen,
		DecayRate:          ClampDecayRate(r.DecayRate),
		TotalAttempts:      r.TotalAttempts,
		CorrectAttempts:    r.CorrectAttempts,
		TypicalAnswerStyle: AnswerStyle(r.TypicalAnswerStyle),
		AvgResponseSecs:    r.AvgResponseSecs,
	}
	s.Confidence = ConfidenceFor(s.Mastery)
	if len(r.StyleCounts) > 0 {
		s.StyleCounts = make(map[AnswerStyle]int, len(r.StyleCounts))
		for k, v := range r.StyleCounts {
			s.StyleCounts[AnswerStyle(k)] = v
		}
	}
	return s
}

func (s *Skill) record() store.SkillRecord {
	counts := make(map[string]int, len(s.StyleCounts))
	for k, v := range s.StyleCounts {
		counts[string(k)] = v
	}
	return store.SkillRecord{
		ID:                 s.ID,
		StudentID:          s.StudentID,
		Domain:             s.Domain,
		Category:           s.Category,
		DisplayName:        s.DisplayName,
		Mastery:            s.Mastery,
		DecayRate:          s.DecayRate,
		LastSeen:           s.LastSeen,
		TotalAttempts:      s.TotalAttempts,
		CorrectAttempts:    s.CorrectAttempts,
		TypicalAnswerStyle: string(s.TypicalAnswerStyle),
		StyleCounts:        counts,
		AvgResponseSecs:    s.AvgResponseSecs,
	}
}
