// Package session runs focus sessions: a bounded sequence of practice loops
// whose difficulty adapts to the learner's performance.
package session

import (
	"encoding/json"
	"time"

	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/mastery"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Session is a single focus session.
type Session struct {
	ID        string              `json:"id"`
	StudentID string              `json:"student_id"`
	Topic     string              `json:"topic"`
	Modality  contentgen.Modality `json:"modality"`
	Status    Status              `json:"status"`

	StartTime             time.Time  `json:"start_time"`
	EndTime               *time.Time `json:"end_time,omitempty"`
	TargetDurationSeconds int        `json:"target_duration_seconds"`

	InitialDifficulty mastery.Difficulty `json:"initial_difficulty"`
	CurrentDifficulty mastery.Difficulty `json:"current_difficulty"`

	ConceptMap *contentgen.ConceptMap `json:"concept_map,omitempty"`

	// SubtopicMastery is the rolling 0-100 mastery of each subtopic
	// practiced in this session.
	SubtopicMastery map[string]float64 `json:"subtopic_mastery"`

	Loops       []*Loop             `json:"loops"`
	Performance *SessionPerformance `json:"performance,omitempty"`
	ReviewPlan  *ReviewPlan         `json:"review_plan,omitempty"`

	CancelReason string `json:"cancel_reason,omitempty"`
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	b, err := json.Marshal(s)
	if err != nil {
		panic("session: clone marshal: " + err.Error())
	}
	var out Session
	if err := json.Unmarshal(b, &out); err != nil {
		panic("session: clone unmarshal: " + err.Error())
	}
	return &out
}

// lastLoop returns the most recent loop, or nil.
func (s *Session) lastLoop() *Loop {
	if len(s.Loops) == 0 {
		return nil
	}
	return s.Loops[len(s.Loops)-1]
}

// loop returns loop n (1-based), or nil.
func (s *Session) loop(n int) *Loop {
	if n < 1 || n > len(s.Loops) {
		return nil
	}
	return s.Loops[n-1]
}

// Loop is one practice cycle inside a session.
type Loop struct {
	Number    int                  `json:"loop_number"`
	StartedAt time.Time            `json:"started_at"`
	SealedAt  *time.Time           `json:"sealed_at,omitempty"`
	Artifact  *contentgen.Artifact `json:"artifact"`

	// Results are attached once, then graded when the loop completes.
	Results     []ItemResult     `json:"results,omitempty"`
	Performance *LoopPerformance `json:"performance,omitempty"`

	// Adjustment is set only when completing the loop changed difficulty.
	Adjustment *Adjustment `json:"adjustment,omitempty"`

	Sealed bool `json:"sealed"`
}

// ItemResult is the learner's outcome on one artifact item.
type ItemResult struct {
	ItemIndex int `json:"item_index"`

	// Subtopic defaults to the artifact item's subtopic.
	Subtopic string `json:"subtopic,omitempty"`

	Correct   bool    `json:"correct"`
	Skipped   bool    `json:"skipped,omitempty"`
	TimeSecs  float64 `json:"time_secs"`
	HintsUsed int     `json:"hints_used"`

	// AnswerStyle is optional; it feeds the session's typical style.
	AnswerStyle mastery.AnswerStyle `json:"answer_style,omitempty"`
}

// LoopPerformance summarizes a completed loop. Levels are in [0,1].
type LoopPerformance struct {
	Accuracy         float64 `json:"accuracy"`
	EngagementLevel  float64 `json:"engagement_level"`
	FrustrationLevel float64 `json:"frustration_level"`
	ItemsCompleted   int     `json:"items_completed"`
}

// Adjustment records a difficulty change.
type Adjustment struct {
	From   mastery.Difficulty `json:"from"`
	To     mastery.Difficulty `json:"to"`
	Reason string             `json:"reason"`
}

// SessionPerformance aggregates a completed session.
type SessionPerformance struct {
	AverageAccuracy    float64             `json:"average_accuracy"`
	MasteredConcepts   []string            `json:"mastered_concepts"`
	NeedingReview      []string            `json:"needing_review"`
	AverageEngagement  float64             `json:"average_engagement"`
	AverageFrustration float64             `json:"average_frustration"`
	ElapsedSeconds     float64             `json:"elapsed_seconds"`
	LoopsCompleted     int                 `json:"loops_completed"`
	TypicalAnswerStyle mastery.AnswerStyle `json:"typical_answer_style,omitempty"`
}

// ReviewPlan is guidance for the learner's next session.
type ReviewPlan struct {
	ReviewSubtopics      []string            `json:"review_subtopics"`
	NewSubtopics         []string            `json:"new_subtopics"`
	RecommendedModality  contentgen.Modality `json:"recommended_modality"`
	TargetDifficulty     mastery.Difficulty  `json:"target_difficulty"`
	Reasoning            string              `json:"reasoning"`
	EstimatedMasteryGain float64             `json:"estimated_mastery_gain"`
	DueItems             []DueItem           `json:"due_items,omitempty"`
}

// DueItem schedules a subtopic for spaced review.
type DueItem struct {
	Subtopic     string    `json:"subtopic"`
	Stage        int       `json:"stage"`
	IntervalDays int       `json:"interval_days"`
	DueAt        time.Time `json:"due_at"`
}

// LoopBudget is the time left for the remaining loops.
type LoopBudget struct {
	LoopsRemaining   int     `json:"loops_remaining"`
	RemainingSeconds float64 `json:"remaining_seconds"`
	SecondsPerLoop   float64 `json:"seconds_per_loop"`
}
