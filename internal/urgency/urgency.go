// Package urgency ranks a student's skills by how badly they need practice.
package urgency

import (
	"sort"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
)

// stalenessDays is the number of idle days that doubles a skill's urgency.
const stalenessDays = 7.0

// Ranked is a skill with its urgency score and suggested difficulty.
type Ranked struct {
	Skill      *mastery.Skill     `json:"skill"`
	Urgency    float64            `json:"urgency"`
	Difficulty mastery.Difficulty `json:"difficulty"`
}

// DaysSince returns the fractional days between lastSeen and now. Future
// timestamps count as zero.
func DaysSince(lastSeen, now time.Time) float64 {
	if !now.After(lastSeen) {
		return 0
	}
	return now.Sub(lastSeen).Hours() / 24.0
}

// Score returns (100 - mastery) * decayRate * (1 + daysSinceSeen/7).
func Score(s *mastery.Skill, now time.Time) float64 {
	return (mastery.MaxMastery - s.Mastery) * s.DecayRate * (1 + DaysSince(s.LastSeen, now)/stalenessDays)
}

// Rank scores every skill and orders them most urgent first. Equal scores
// are ordered by lowest mastery, then by domain.
func Rank(skills []*mastery.Skill, now time.Time) []Ranked {
	out := make([]Ranked, 0, len(skills))
	for _, s := range skills {
		if s == nil {
			continue
		}
		out = append(out, Ranked{
			Skill:      s,
			Urgency:    Score(s, now),
			Difficulty: mastery.DifficultyFor(s.Mastery),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Urgency != b.Urgency {
			return a.Urgency > b.Urgency
		}
		if a.Skill.Mastery != b.Skill.Mastery {
			return a.Skill.Mastery < b.Skill.Mastery
		}
		return a.Skill.Domain < b.Skill.Domain
	})
	return out
}

// SelectNext returns the most urgent skill. It fails with
// apperr.ErrNoSkillsAvailable when skills is empty; callers seed a
// curriculum first.
func SelectNext(skills []*mastery.Skill, now time.Time) (Ranked, error) {
	ranked := Rank(skills, now)
	if len(ranked) == 0 {
		return Ranked{}, apperr.ErrNoSkillsAvailable
	}
	return ranked[0], nil
}
