package mastery

import (
	"fmt"
	"math"
	"time"
)

// NoteKind classifies a behavioral note.
type NoteKind string

const (
	NoteMisconception    NoteKind = "misconception"
	NoteAttentionAnomaly NoteKind = "attention_anomaly"
	NoteConfidentError   NoteKind = "confident_error"
)

// responseDeviation is the relative distance from the historical average
// response time beyond which an attention anomaly is noted.
const responseDeviation = 0.5

// Note is a behavioral observation about a learner.
type Note struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	SkillID   string    `json:"skill_id"`
	SessionID string    `json:"session_id,omitempty"`
	Kind      NoteKind  `json:"kind"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteReason is one trigger for raising a note.
type NoteReason struct {
	Kind   NoteKind
	Detail string
}

// NoteReasons returns the reasons, if any, to raise behavioral notes for an
// attempt. avgSecs is the skill's historical average response time before
// this attempt; zero means no history and disables the timing check.
func NoteReasons(a GradedAttempt, avgSecs, responseSecs float64) []NoteReason {
	var reasons []NoteReason

	if a.MisunderstandingLabel != "" {
		reasons = append(reasons, NoteReason{
			Kind:   NoteMisconception,
			Detail: fmt.Sprintf("misconception: %s", a.MisunderstandingLabel),
		})
	}

	if avgSecs > 0 && responseSecs > 0 {
		dev := math.Abs(responseSecs-avgSecs) / avgSecs
		if dev > responseDeviation {
			reasons = append(reasons, NoteReason{
				Kind:   NoteAttentionAnomaly,
				Detail: fmt.Sprintf("response time %.1fs deviates %.0f%% from average %.1fs", responseSecs, dev*100, avgSecs),
			})
		}
	}

	if a.Correctness == Incorrect && a.ConfidenceLevel == ConfidenceHigh {
		reasons = append(reasons, NoteReason{
			Kind:   NoteConfidentError,
			Detail: "incorrect answer given with high confidence",
		})
	}

	return reasons
}
