// Package events holds the domain events raised by the engine until a
// caller drains them or a relay publishes them.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind identifies a domain event.
type Kind string

const (
	KindConceptMastered    Kind = "concept_mastered"
	KindDifficultyAdjusted Kind = "difficulty_adjusted"
	KindNoteRaised         Kind = "note_raised"
)

// Event is a single domain event.
type Event struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	StudentID string    `json:"student_id"`
	SessionID string    `json:"session_id,omitempty"`
	SkillID   string    `json:"skill_id,omitempty"`
	Subtopic  string    `json:"subtopic,omitempty"`
	From      string    `json:"from,omitempty"` // previous difficulty
	To        string    `json:"to,omitempty"`   // new difficulty
	Reason    string    `json:"reason"`         // human-readable, e.g. "Mastered equal parts"
	At        time.Time `json:"at"`
}

// Sink receives events as they are raised.
type Sink interface {
	Emit(e Event)
}

// Publisher delivers drained events to an external channel.
type Publisher interface {
	Publish(ctx context.Context, batch []Event) error
}

// DefaultOutboxLimit bounds an outbox nobody drains.
const DefaultOutboxLimit = 1024

// Outbox accumulates events in order. When full, the oldest event is
// dropped.
type Outbox struct {
	mu      sync.Mutex
	events  []Event
	limit   int
	dropped int
}

// NewOutbox creates an outbox holding at most limit events.
func NewOutbox(limit int) *Outbox {
	if limit <= 0 {
		limit = DefaultOutboxLimit
	}
	return &Outbox{limit: limit}
}

// Emit appends e, assigning an ID when it has none.
func (o *Outbox) Emit(e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
	if over := len(o.events) - o.limit; over > 0 {
		o.events = append([]Event(nil), o.events[over:]...)
		o.dropped += over
	}
}

// Drain removes and returns every pending event, oldest first.
func (o *Outbox) Drain() []Event {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := o.events
	o.events = nil
	return out
}

// Requeue puts events back at the front, ahead of anything emitted since
// they were drained.
func (o *Outbox) Requeue(batch []Event) {
	if len(batch) == 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	merged := make([]Event, 0, len(batch)+len(o.events))
	merged = append(merged, batch...)
	merged = append(merged, o.events...)
	if over := len(merged) - o.limit; over > 0 {
		merged = merged[over:]
		o.dropped += over
	}
	o.events = merged
}

// Len returns the number of pending events.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.events)
}

// Dropped returns how many events were discarded because the outbox was full.
func (o *Outbox) Dropped() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dropped
}
