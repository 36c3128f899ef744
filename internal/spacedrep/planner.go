package spacedrep

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/samber/lo"
)

// Config tunes next-session planning.
type Config struct {
	MasteryThreshold float64 `mapstructure:"mastery_threshold"`
	MaxNewSubtopics  int     `mapstructure:"max_new_subtopics"`

	// Estimated gain is GainPerMinute x accuracy x minutes, capped at MaxGain.
	GainPerMinute float64 `mapstructure:"gain_per_minute"`
	MaxGain       float64 `mapstructure:"max_gain"`
}

// DefaultConfig returns the standard planning settings.
func DefaultConfig() Config {
	return Config{
		MasteryThreshold: 70,
		MaxNewSubtopics:  2,
		GainPerMinute:    0.5,
		MaxGain:          15,
	}
}

// Planner builds the review plan for a completed session.
type Planner struct {
	cfg Config
}

var _ session.ReviewPlanner = (*Planner)(nil)

// NewPlanner creates a planner. Zero fields take their defaults.
func NewPlanner(cfg Config) *Planner {
	d := DefaultConfig()
	if cfg.MasteryThreshold <= 0 {
		cfg.MasteryThreshold = d.MasteryThreshold
	}
	if cfg.MaxNewSubtopics <= 0 {
		cfg.MaxNewSubtopics = d.MaxNewSubtopics
	}
	if cfg.GainPerMinute <= 0 {
		cfg.GainPerMinute = d.GainPerMinute
	}
	if cfg.MaxGain <= 0 {
		cfg.MaxGain = d.MaxGain
	}
	return &Planner{cfg: cfg}
}

// Plan recommends what the next session should cover.
func (p *Planner) Plan(s *session.Session, perf *session.SessionPerformance, now time.Time) *session.ReviewPlan {
	plan := &session.ReviewPlan{
		ReviewSubtopics:     append([]string{}, perf.NeedingReview...),
		NewSubtopics:        p.newSubtopics(s),
		RecommendedModality: p.modality(s, perf),
		TargetDifficulty:    s.CurrentDifficulty,
		EstimatedMasteryGain: math.Min(
			p.cfg.GainPerMinute*perf.AverageAccuracy*perf.ElapsedSeconds/60, p.cfg.MaxGain),
		DueItems: p.schedule(s, perf, now),
	}
	plan.Reasoning = reasoning(perf, plan)
	return plan
}

// newSubtopics picks unpracticed subtopics whose prerequisites are all
// mastered, in concept map order.
func (p *Planner) newSubtopics(s *session.Session) []string {
	out := []string{}
	if s.ConceptMap == nil {
		return out
	}
	for _, st := range s.ConceptMap.Subtopics {
		if len(out) == p.cfg.MaxNewSubtopics {
			break
		}
		if _, practiced := s.SubtopicMastery[st.Name]; practiced {
			continue
		}
		ready := lo.EveryBy(st.Prerequisites, func(pre string) bool {
			return s.SubtopicMastery[pre] >= p.cfg.MasteryThreshold
		})
		if ready {
			out = append(out, st.Name)
		}
	}
	return out
}

// modality rotates away from the format used most this session. Guessing
// and rushing learners are asked to explain instead.
func (p *Planner) modality(s *session.Session, perf *session.SessionPerformance) contentgen.Modality {
	if perf.TypicalAnswerStyle.NeedsExplanation() {
		return contentgen.ModalityExplain
	}

	counts := map[contentgen.Modality]int{}
	for _, l := range s.Loops {
		m := s.Modality
		if l.Artifact != nil && l.Artifact.Modality != "" {
			m = l.Artifact.Modality
		}
		counts[m]++
	}
	if len(counts) == 0 {
		counts[s.Modality] = 1
	}

	// The explain format is not part of the rotation.
	rotation := []contentgen.Modality{contentgen.ModalityQuiz, contentgen.ModalityFlashcards, contentgen.ModalityMicroGame}
	most, best := contentgen.ModalityQuiz, -1
	for _, m := range contentgen.Modalities {
		if counts[m] > best {
			most, best = m, counts[m]
		}
	}
	i := lo.IndexOf(rotation, most)
	if i < 0 {
		return contentgen.ModalityQuiz
	}
	return rotation[(i+1)%len(rotation)]
}

// schedule places every touched subtopic on the interval ladder.
func (p *Planner) schedule(s *session.Session, perf *session.SessionPerformance, now time.Time) []session.DueItem {
	touched := append(append([]string{}, perf.NeedingReview...), perf.MasteredConcepts...)
	items := make([]session.DueItem, 0, len(touched))
	for _, name := range touched {
		stage := StageFor(s.SubtopicMastery[name], p.cfg.MasteryThreshold)
		days := IntervalDays(stage)
		items = append(items, session.DueItem{
			Subtopic:     name,
			Stage:        stage,
			IntervalDays: days,
			DueAt:        now.AddDate(0, 0, days),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueAt.Before(items[j].DueAt)
	})
	return items
}

func reasoning(perf *session.SessionPerformance, plan *session.ReviewPlan) string {
	parts := []string{fmt.Sprintf("Average accuracy %.0f%% over %d loops.", perf.AverageAccuracy*100, perf.LoopsCompleted)}
	if len(plan.ReviewSubtopics) > 0 {
		parts = append(parts, fmt.Sprintf("Review %s.", strings.Join(plan.ReviewSubtopics, ", ")))
	}
	if len(plan.NewSubtopics) > 0 {
		parts = append(parts, fmt.Sprintf("Ready for %s.", strings.Join(plan.NewSubtopics, ", ")))
	}
	if plan.RecommendedModality == contentgen.ModalityExplain {
		parts = append(parts, fmt.Sprintf("Typical answers were %s, so the next session asks for explanations.", perf.TypicalAnswerStyle))
	} else {
		parts = append(parts, fmt.Sprintf("Switch to %s.", plan.RecommendedModality))
	}
	if perf.AverageFrustration >= 0.6 {
		parts = append(parts, "Frustration ran high; keep the next session short.")
	}
	return strings.Join(parts, " ")
}
