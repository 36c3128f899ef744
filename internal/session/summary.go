package session

import (
	"time"

	"github.com/abhisek/focusloop/internal/mastery"
)

// BuildPerformance aggregates the sealed loops of s. fallbackStyle is used
// when no result carried an answer style.
func BuildPerformance(s *Session, now time.Time, threshold float64, fallbackStyle mastery.AnswerStyle) *SessionPerformance {
	perf := &SessionPerformance{
		MasteredConcepts: []string{},
		NeedingReview:    []string{},
	}

	styles := map[mastery.AnswerStyle]int{}
	touched := map[string]bool{}
	for _, l := range s.Loops {
		if !l.Sealed || l.Performance == nil {
			continue
		}
		perf.LoopsCompleted++
		perf.AverageAccuracy += l.Performance.Accuracy
		perf.AverageEngagement += l.Performance.EngagementLevel
		perf.AverageFrustration += l.Performance.FrustrationLevel
		for _, r := range l.Results {
			if r.Subtopic != "" {
				touched[r.Subtopic] = true
			}
			if r.AnswerStyle != "" {
				styles[r.AnswerStyle]++
			}
		}
	}
	if n := float64(perf.LoopsCompleted); n > 0 {
		perf.AverageAccuracy /= n
		perf.AverageEngagement /= n
		perf.AverageFrustration /= n
	}

	for _, name := range touchedInOrder(s, touched) {
		if s.SubtopicMastery[name] >= threshold {
			perf.MasteredConcepts = append(perf.MasteredConcepts, name)
		} else {
			perf.NeedingReview = append(perf.NeedingReview, name)
		}
	}

	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	perf.ElapsedSeconds = max(end.Sub(s.StartTime).Seconds(), 0)

	perf.TypicalAnswerStyle = mastery.TypicalStyle(styles)
	if perf.TypicalAnswerStyle == "" {
		perf.TypicalAnswerStyle = fallbackStyle
	}
	return perf
}

// touchedInOrder lists touched subtopics in concept map order, followed by
// any not on the map.
func touchedInOrder(s *Session, touched map[string]bool) []string {
	var out []string
	seen := map[string]bool{}
	if s.ConceptMap != nil {
		for _, st := range s.ConceptMap.Subtopics {
			if touched[st.Name] {
				out = append(out, st.Name)
				seen[st.Name] = true
			}
		}
	}
	for _, l := range s.Loops {
		for _, r := range l.Results {
			if touched[r.Subtopic] && !seen[r.Subtopic] {
				out = append(out, r.Subtopic)
				seen[r.Subtopic] = true
			}
		}
	}
	return out
}
