// Package engine is the service boundary: missions, grading and the focus
// session surface, composed from the ledger, evaluator, orchestrator and
// stores.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/curriculum"
	"github.com/abhisek/focusloop/internal/diagnosis"
	"github.com/abhisek/focusloop/internal/events"
	"github.com/abhisek/focusloop/internal/keylock"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/scaffold"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/abhisek/focusloop/internal/store"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/abhisek/focusloop/internal/engine"

// Config holds engine tunables.
type Config struct {
	// AnswerWindow is the size of the rolling performance window.
	AnswerWindow int `mapstructure:"answer_window"`

	// A performance snapshot is written every SnapshotEvery grades; the
	// newest SnapshotKeep are retained.
	SnapshotEvery int `mapstructure:"snapshot_every"`
	SnapshotKeep  int `mapstructure:"snapshot_keep"`

	// MasteryThreshold is the skill mastery that counts as mastered.
	MasteryThreshold float64 `mapstructure:"mastery_threshold"`

	// MissionTTL is how long an opened mission is held in memory. Older
	// missions are resolved from their audit record.
	MissionTTL time.Duration `mapstructure:"mission_ttl"`
}

// DefaultConfig returns the standard engine settings.
func DefaultConfig() Config {
	return Config{
		AnswerWindow:     mastery.DefaultAnswerWindow,
		SnapshotEvery:    20,
		SnapshotKeep:     3,
		MasteryThreshold: 70,
		MissionTTL:       2 * time.Hour,
	}
}

// Deps are the engine's collaborators. Ledger, Evaluator and Orchestrator
// are required; the stores are optional and their absence only disables
// auditing and snapshots.
type Deps struct {
	Ledger       *mastery.Ledger
	Evaluator    diagnosis.Evaluator
	Orchestrator *session.Orchestrator
	Scaffold     *scaffold.Selector
	Curriculum   *curriculum.Curriculum
	Cache        mastery.PerformanceCache
	Outbox       *events.Outbox

	Events    store.EventRepo
	Notes     store.NoteRepo
	Snapshots store.SnapshotRepo

	// Tracer defaults to the global provider.
	Tracer trace.TracerProvider

	Clock clock.Clock
	Log   logrus.FieldLogger
}

// Engine implements the exposed operations.
type Engine struct {
	deps   Deps
	cfg    Config
	clk    clock.Clock
	log    logrus.FieldLogger
	tracer trace.Tracer

	missionsMu sync.RWMutex
	missions   map[string]*Mission

	// perfLocks serializes performance state updates per student.
	perfLocks *keylock.Set
}

// New creates an Engine.
func New(deps Deps, cfg Config) *Engine {
	d := DefaultConfig()
	if cfg.AnswerWindow <= 0 {
		cfg.AnswerWindow = d.AnswerWindow
	}
	if cfg.SnapshotEvery <= 0 {
		cfg.SnapshotEvery = d.SnapshotEvery
	}
	if cfg.SnapshotKeep <= 0 {
		cfg.SnapshotKeep = d.SnapshotKeep
	}
	if cfg.MasteryThreshold <= 0 {
		cfg.MasteryThreshold = d.MasteryThreshold
	}
	if cfg.MissionTTL <= 0 {
		cfg.MissionTTL = d.MissionTTL
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Log == nil {
		deps.Log = logging.Discard()
	}
	if deps.Scaffold == nil {
		deps.Scaffold = scaffold.New(scaffold.DefaultConfig())
	}
	if deps.Curriculum == nil {
		deps.Curriculum = curriculum.Default()
	}
	if deps.Cache == nil {
		deps.Cache = mastery.NewMemoryCache()
	}
	if deps.Outbox == nil {
		deps.Outbox = events.NewOutbox(0)
	}
	if deps.Tracer == nil {
		deps.Tracer = otel.GetTracerProvider()
	}
	return &Engine{
		deps:      deps,
		cfg:       cfg,
		clk:       deps.Clock,
		log:       deps.Log.WithField("component", "engine"),
		tracer:    deps.Tracer.Tracer(tracerName),
		missions:  make(map[string]*Mission),
		perfLocks: keylock.New(),
	}
}

// Drain returns and clears the pending domain events. Callers dispatch
// them; the engine never does I/O for them itself.
func (e *Engine) Drain() []events.Event {
	return e.deps.Outbox.Drain()
}

// Outbox exposes the event outbox for relays.
func (e *Engine) Outbox() *events.Outbox { return e.deps.Outbox }

// Orchestrator exposes the session orchestrator for background workers.
func (e *Engine) Orchestrator() *session.Orchestrator { return e.deps.Orchestrator }

func (e *Engine) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, "engine."+op, trace.WithAttributes(attrs...))
}

// end closes span, recording err if any, and passes err through.
func end(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
	return err
}
