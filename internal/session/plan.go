package session

import (
	"context"
	"time"

	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/store"
)

// ReviewPlanner produces next-session guidance for a completed session.
type ReviewPlanner interface {
	Plan(s *Session, perf *SessionPerformance, now time.Time) *ReviewPlan
}

// LearnerProfile supplies what is known about a learner outside the
// session. Implementations must be safe for concurrent use.
type LearnerProfile interface {
	TypicalAnswerStyle(ctx context.Context, studentID, domain string) (mastery.AnswerStyle, error)
}

// Recorder appends session transitions to the audit log.
type Recorder interface {
	AppendSession(ctx context.Context, data store.SessionEventData) error
}

// Config holds orchestrator tunables.
type Config struct {
	// MasteryThreshold is the rolling subtopic mastery counted as mastered.
	MasteryThreshold float64 `mapstructure:"mastery_threshold"`

	// RollingWeight is the weight of the newest loop in rolling mastery.
	RollingWeight float64 `mapstructure:"rolling_weight"`

	SubtopicsPerLoop int `mapstructure:"subtopics_per_loop"`
	MinLoops         int `mapstructure:"min_loops"`
	MaxLoops         int `mapstructure:"max_loops"`

	DefaultDurationSeconds int `mapstructure:"default_duration_seconds"`

	// SweepGrace is how long past its target an open session may live.
	SweepGrace    time.Duration `mapstructure:"sweep_grace"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`

	// Retention is how long a finished session stays in memory before a
	// sweep evicts it. Later reads load it from the store.
	Retention time.Duration `mapstructure:"retention"`

	// Difficulty goes up at or above RaiseAt accuracy and down at or below
	// LowerAt, or when frustration reaches FrustrationLowerAt.
	RaiseAt            float64 `mapstructure:"raise_at"`
	LowerAt            float64 `mapstructure:"lower_at"`
	FrustrationLowerAt float64 `mapstructure:"frustration_lower_at"`

	// MaxHints normalizes hint usage in the frustration estimate.
	MaxHints int `mapstructure:"max_hints"`
}

// DefaultConfig returns the standard session settings.
func DefaultConfig() Config {
	return Config{
		MasteryThreshold:       70,
		RollingWeight:          0.5,
		SubtopicsPerLoop:       2,
		MinLoops:               3,
		MaxLoops:               4,
		DefaultDurationSeconds: 1200,
		SweepGrace:             600 * time.Second,
		SweepInterval:          time.Minute,
		Retention:              15 * time.Minute,
		RaiseAt:                0.8,
		LowerAt:                0.5,
		FrustrationLowerAt:     0.6,
		MaxHints:               3,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MasteryThreshold <= 0 {
		c.MasteryThreshold = d.MasteryThreshold
	}
	if c.RollingWeight <= 0 || c.RollingWeight > 1 {
		c.RollingWeight = d.RollingWeight
	}
	if c.SubtopicsPerLoop <= 0 {
		c.SubtopicsPerLoop = d.SubtopicsPerLoop
	}
	if c.MinLoops <= 0 {
		c.MinLoops = d.MinLoops
	}
	if c.MaxLoops < c.MinLoops {
		c.MaxLoops = max(d.MaxLoops, c.MinLoops)
	}
	if c.DefaultDurationSeconds <= 0 {
		c.DefaultDurationSeconds = d.DefaultDurationSeconds
	}
	if c.SweepGrace <= 0 {
		c.SweepGrace = d.SweepGrace
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = d.SweepInterval
	}
	if c.Retention <= 0 {
		c.Retention = d.Retention
	}
	if c.RaiseAt <= 0 {
		c.RaiseAt = d.RaiseAt
	}
	if c.LowerAt <= 0 {
		c.LowerAt = d.LowerAt
	}
	if c.FrustrationLowerAt <= 0 {
		c.FrustrationLowerAt = d.FrustrationLowerAt
	}
	if c.MaxHints <= 0 {
		c.MaxHints = d.MaxHints
	}
	return c
}
