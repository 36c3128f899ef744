// Package scaffold picks hint levels, worked-example eligibility and
// scaffolding intensity from a learner's attempt history.
package scaffold

import "github.com/abhisek/focusloop/internal/mastery"

// HintLevel is the depth of the next hint. HintNone means no hint.
type HintLevel int

const (
	HintNone HintLevel = iota
	HintNudge
	HintStrategy
	HintWalkthrough
)

func (h HintLevel) String() string {
	switch h {
	case HintNone:
		return "none"
	case HintNudge:
		return "nudge"
	case HintStrategy:
		return "strategy"
	case HintWalkthrough:
		return "walkthrough"
	}
	return "unknown"
}

// Intensity is how much support a learner should get.
type Intensity string

const (
	IntensityHigh   Intensity = "high"
	IntensityMedium Intensity = "medium"
	IntensityLow    Intensity = "low"
)

// Config holds the selector thresholds.
type Config struct {
	// MaxHints is the number of hints available per question.
	MaxHints int `mapstructure:"max_hints"`

	// Struggle decides when recent answers count as struggling.
	Struggle mastery.StruggleThresholds `mapstructure:"struggle"`

	// HighBelow and MediumBelow band mastery into intensity.
	HighBelow   float64 `mapstructure:"high_below"`
	MediumBelow float64 `mapstructure:"medium_below"`
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		MaxHints:    3,
		Struggle:    mastery.DefaultStruggleThresholds(),
		HighBelow:   30,
		MediumBelow: 70,
	}
}

// Selector applies a Config.
type Selector struct {
	cfg Config
}

// New creates a Selector. Zero fields of cfg take their defaults.
func New(cfg Config) *Selector {
	def := DefaultConfig()
	if cfg.MaxHints <= 0 {
		cfg.MaxHints = def.MaxHints
	}
	if cfg.Struggle.Window <= 0 {
		cfg.Struggle = def.Struggle
	}
	if cfg.HighBelow == 0 && cfg.MediumBelow == 0 {
		cfg.HighBelow, cfg.MediumBelow = def.HighBelow, def.MediumBelow
	}
	return &Selector{cfg: cfg}
}

// Struggling reports whether recent answers meet the struggle thresholds.
func (s *Selector) Struggling(recent []mastery.AnswerRecord) bool {
	return mastery.Struggling(recent, s.cfg.Struggle)
}

// NextHint returns the hint level for the given attempt. A struggling
// learner gets one level more than the base mapping. The result never
// exceeds MaxHints.
func (s *Selector) NextHint(attempt int, confidence mastery.Confidence, recent []mastery.AnswerRecord) HintLevel {
	var level HintLevel
	switch {
	case attempt <= 0:
		return HintNone
	case attempt == 1:
		if confidence == mastery.ConfidenceLow {
			level = HintNudge
		}
	case attempt == 2:
		level = HintStrategy
	default:
		level = HintWalkthrough
	}

	if s.Struggling(recent) {
		level++
	}
	if limit := HintLevel(s.cfg.MaxHints); level > limit {
		level = limit
	}
	return level
}

// WorkedExampleEligible reports whether a full worked example may be shown.
func (s *Selector) WorkedExampleEligible(attempt int, recent []mastery.AnswerRecord) bool {
	return attempt >= 3 || (attempt >= 2 && s.Struggling(recent))
}

// Intensity bands mastery into a support level. Struggling always means high.
func (s *Selector) Intensity(m float64, recent []mastery.AnswerRecord) Intensity {
	switch {
	case s.Struggling(recent), m < s.cfg.HighBelow:
		return IntensityHigh
	case m < s.cfg.MediumBelow:
		return IntensityMedium
	default:
		return IntensityLow
	}
}

// Config returns the effective configuration.
func (s *Selector) Config() Config { return s.cfg }
