package mastery

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/focusloop/internal/store"
)

const (
	// DefaultAnswerWindow is the number of recent answers kept per student.
	DefaultAnswerWindow = 10

	minAnswerWindow = 5
	maxAnswerWindow = 20
)

// Struggling indicator labels.
const (
	IndicatorHintHeavy   = "hint_heavy"
	IndicatorSlow        = "slow_responses"
	IndicatorErrorStreak = "error_streak"
	IndicatorLowAccuracy = "low_accuracy"
)

// StruggleThresholds defines when recent answers count as struggling.
type StruggleThresholds struct {
	Window   int     `mapstructure:"window"`    // answers considered
	AvgHints float64 `mapstructure:"avg_hints"` // mean hints strictly above this
	AvgSecs  float64 `mapstructure:"avg_secs"`  // mean time strictly above this
}

// DefaultStruggleThresholds: more than 2 hints or 60s on average over the
// last 3 answers.
func DefaultStruggleThresholds() StruggleThresholds {
	return StruggleThresholds{Window: 3, AvgHints: 2, AvgSecs: 60}
}

// AnswerRecord is one answer in the rolling window.
type AnswerRecord struct {
	SkillID   string    `json:"skill_id"`
	Correct   bool      `json:"correct"`
	HintsUsed int       `json:"hints_used"`
	TimeSecs  float64   `json:"time_secs"`
	At        time.Time `json:"at"`
}

// Struggling reports whether the tail of recent meets the thresholds.
func Struggling(recent []AnswerRecord, t StruggleThresholds) bool {
	hints, secs, ok := tailAverages(recent, t.Window)
	if !ok {
		return false
	}
	return hints > t.AvgHints || secs > t.AvgSecs
}

func tailAverages(recent []AnswerRecord, window int) (hints, secs float64, ok bool) {
	if window <= 0 {
		window = DefaultStruggleThresholds().Window
	}
	if len(recent) == 0 {
		return 0, 0, false
	}
	tail := recent[max(len(recent)-window, 0):]
	for _, r := range tail {
		hints += float64(r.HintsUsed)
		secs += r.TimeSecs
	}
	n := float64(len(tail))
	return hints / n, secs / n, true
}

// PerformanceState is a student's rolling performance view.
type PerformanceState struct {
	StudentID            string         `json:"student_id"`
	MasteryLevel         float64        `json:"mastery_level"`
	AccuracyRate         float64        `json:"accuracy_rate"`
	CurrentStreak        int            `json:"current_streak"`
	RecentAnswers        []AnswerRecord `json:"recent_answers"`
	Window               int            `json:"window"`
	StrugglingIndicators []string       `json:"struggling_indicators,omitempty"`
	CurrentDifficulty    Difficulty     `json:"current_difficulty"`
	LastEventSequence    int64          `json:"last_event_sequence"`

	// SinceSnapshot counts answers recorded after the last snapshot.
	SinceSnapshot int `json:"since_snapshot"`
}

// NewPerformanceState returns an empty state with the given window, clamped
// to [5, 20]. A zero window uses DefaultAnswerWindow.
func NewPerformanceState(studentID string, window int) *PerformanceState {
	if window == 0 {
		window = DefaultAnswerWindow
	}
	return &PerformanceState{
		StudentID:         studentID,
		Window:            min(max(window, minAnswerWindow), maxAnswerWindow),
		CurrentDifficulty: DifficultyEasy,
	}
}

// Clone returns a deep copy.
func (p *PerformanceState) Clone() *PerformanceState {
	c := *p
	c.RecentAnswers = append([]AnswerRecord(nil), p.RecentAnswers...)
	c.StrugglingIndicators = append([]string(nil), p.StrugglingIndicators...)
	return &c
}

// Record folds one answer into the state. mastery is the skill's mastery
// after the answer was applied.
func (p *PerformanceState) Record(a AnswerRecord, mastery float64, t StruggleThresholds) {
	p.RecentAnswers = append(p.RecentAnswers, a)
	window := p.Window
	if window <= 0 {
		window = DefaultAnswerWindow
	}
	if len(p.RecentAnswers) > window {
		p.RecentAnswers = p.RecentAnswers[len(p.RecentAnswers)-window:]
	}

	if a.Correct {
		p.CurrentStreak++
	} else {
		p.CurrentStreak = 0
	}

	correct := 0
	for _, r := range p.RecentAnswers {
		if r.Correct {
			correct++
		}
	}
	p.AccuracyRate = float64(correct) / float64(len(p.RecentAnswers))
	p.MasteryLevel = mastery
	p.CurrentDifficulty = DifficultyFor(mastery)
	p.StrugglingIndicators = indicators(p.RecentAnswers, t)
	p.SinceSnapshot++
}

// Struggling reports whether the state's recent answers meet t.
func (p *PerformanceState) Struggling(t StruggleThresholds) bool {
	return Struggling(p.RecentAnswers, t)
}

func indicators(recent []AnswerRecord, t StruggleThresholds) []string {
	var out []string
	hints, secs, ok := tailAverages(recent, t.Window)
	if !ok {
		return nil
	}
	if hints > t.AvgHints {
		out = append(out, IndicatorHintHeavy)
	}
	if secs > t.AvgSecs {
		out = append(out, IndicatorSlow)
	}

	wrong := 0
	for i := len(recent) - 1; i >= 0 && !recent[i].Correct; i-- {
		wrong++
	}
	if wrong >= 3 {
		out = append(out, IndicatorErrorStreak)
	}

	if len(recent) >= minAnswerWindow {
		correct := 0
		for _, r := range recent {
			if r.Correct {
				correct++
			}
		}
		if float64(correct)/float64(len(recent)) < 0.5 {
			out = append(out, IndicatorLowAccuracy)
		}
	}
	return out
}

// Replay folds persisted grade events into the state, oldest first.
func (p *PerformanceState) Replay(events []store.GradeEventData, t StruggleThresholds) {
	for _, e := range events {
		p.Record(AnswerRecord{
			SkillID:   e.SkillID,
			Correct:   e.Correctness == string(Correct),
			HintsUsed: e.HintsUsed,
			TimeSecs:  e.TimeSecs,
			At:        e.Timestamp,
		}, e.NewMastery, t)
		if e.Sequence > p.LastEventSequence {
			p.LastEventSequence = e.Sequence
		}
	}
}

// Snapshot encodes the state for the snapshot repository.
// The encoded state has SinceSnapshot reset.
func (p *PerformanceState) Snapshot(now time.Time) (*store.PerformanceSnapshot, error) {
	c := *p
	c.SinceSnapshot = 0
	data, err := json.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("encode performance state: %w", err)
	}
	return &store.PerformanceSnapshot{
		StudentID: p.StudentID,
		Sequence:  p.LastEventSequence,
		Timestamp: now,
		Data:      data,
	}, nil
}

// RestorePerformance decodes a snapshot.
func RestorePerformance(snap *store.PerformanceSnapshot) (*PerformanceState, error) {
	var p PerformanceState
	if err := json.Unmarshal(snap.Data, &p); err != nil {
		return nil, fmt.Errorf("decode performance state: %w", err)
	}
	p.StudentID = snap.StudentID
	p.LastEventSequence = snap.Sequence
	return &p, nil
}

// PerformanceCache holds performance states between requests.
type PerformanceCache interface {
	// Get returns the cached state, or nil when absent.
	Get(ctx context.Context, studentID string) (*PerformanceState, error)
	Put(ctx context.Context, state *PerformanceState) error
}

// MemoryCache is an in-process PerformanceCache.
type MemoryCache struct {
	mu     sync.RWMutex
	states map[string]*PerformanceState
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{states: make(map[string]*PerformanceState)}
}

func (c *MemoryCache) Get(_ context.Context, studentID string) (*PerformanceState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if p, ok := c.states[studentID]; ok {
		return p.Clone(), nil
	}
	return nil, nil
}

func (c *MemoryCache) Put(_ context.Context, state *PerformanceState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[state.StudentID] = state.Clone()
	return nil
}
