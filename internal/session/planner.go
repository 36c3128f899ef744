package session

import (
	"sort"

	"github.com/samber/lo"
)

// pickSubtopics returns up to n subtopics for the next loop, weakest
// rolling mastery first. Unpracticed subtopics count as zero; ties keep
// concept map order.
func pickSubtopics(s *Session, n int) []string {
	if s.ConceptMap == nil || len(s.ConceptMap.Subtopics) == 0 {
		return []string{s.Topic}
	}
	names := s.ConceptMap.Names()
	sort.SliceStable(names, func(i, j int) bool {
		return s.SubtopicMastery[names[i]] < s.SubtopicMastery[names[j]]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// shownPrompts lists the prompts of every loop so far, for deduplication.
func shownPrompts(s *Session) []string {
	return lo.FlatMap(s.Loops, func(l *Loop, _ int) []string {
		if l.Artifact == nil {
			return nil
		}
		return l.Artifact.Prompts()
	})
}
