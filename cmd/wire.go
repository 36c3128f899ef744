package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/focusloop/internal/clock"
	"github.com/abhisek/focusloop/internal/config"
	"github.com/abhisek/focusloop/internal/contentgen"
	"github.com/abhisek/focusloop/internal/diagnosis"
	"github.com/abhisek/focusloop/internal/engine"
	"github.com/abhisek/focusloop/internal/events"
	"github.com/abhisek/focusloop/internal/llm"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/abhisek/focusloop/internal/redisx"
	"github.com/abhisek/focusloop/internal/scaffold"
	"github.com/abhisek/focusloop/internal/session"
	"github.com/abhisek/focusloop/internal/spacedrep"
	"github.com/abhisek/focusloop/internal/store"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runtime is the fully wired engine with its background workers.
type runtime struct {
	store  *store.Store
	writer *store.RetryingWriter
	redis  *goredis.Client
	engine *engine.Engine
	relay  *events.Relay
}

// buildRuntime opens the store and assembles the engine. Redis and the LLM
// are optional: without them the engine uses the in-memory cache, logs
// events and grades with the heuristic evaluator.
func buildRuntime(ctx context.Context, cmd *cobra.Command, cfg *config.Config, log logrus.FieldLogger) (*runtime, error) {
	st, err := openStore(cmd, cfg)
	if err != nil {
		return nil, err
	}
	rt := &runtime{store: st}

	cur, err := cfg.LoadCurriculum()
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("load curriculum: %w", err)
	}

	eventRepo := st.EventRepo()
	var provider llm.Provider
	if cfg.LLM.Enabled() {
		provider, err = llm.NewProvider(ctx, cfg.LLM, eventRepo, log)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("llm provider: %w", err)
		}
	} else {
		log.Warn("no LLM provider configured, using template content and heuristic grading")
	}

	var (
		cache mastery.PerformanceCache = mastery.NewMemoryCache()
		pub   events.Publisher         = events.NewLogPublisher(log.WithField("component", "events"))
	)
	if cfg.Redis.Enabled() {
		rdb, err := redisx.Dial(ctx, cfg.Redis)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.redis = rdb
		cache = redisx.NewPerformanceCache(rdb, cfg.Redis.KeyPrefix, cfg.Redis.CacheTTL)
		pub = redisx.NewPublisher(rdb, cfg.Redis.Channel)
	}

	rt.writer = store.NewRetryingWriter(st.SkillRepo(), st.SessionRepo(), st.NoteRepo(), cfg.Retry, log)
	ledger := mastery.NewLedger(rt.writer, clock.System{}, log)
	outbox := events.NewOutbox(events.DefaultOutboxLimit)

	orch := session.NewOrchestrator(session.Deps{
		Repo:      rt.writer,
		Generator: contentgen.NewGenerator(provider, cfg.Generator, cfg.LLM.Timeout, log),
		Planner:   spacedrep.NewPlanner(cfg.Review),
		Profile:   ledger,
		Recorder:  eventRepo,
		Events:    outbox,
		Log:       log,
	}, cfg.Session)

	rt.engine = engine.New(engine.Deps{
		Ledger:       ledger,
		Evaluator:    diagnosis.NewEvaluator(provider, cfg.Evaluator, cfg.LLM.Timeout, log),
		Orchestrator: orch,
		Scaffold:     scaffold.New(cfg.Scaffold),
		Curriculum:   cur,
		Cache:        cache,
		Outbox:       outbox,
		Events:       eventRepo,
		Notes:        rt.writer,
		Snapshots:    st.SnapshotRepo(),
		Log:          log,
	}, cfg.Engine)
	rt.relay = events.NewRelay(outbox, pub, time.Second, log)
	return rt, nil
}

// Close flushes pending writes and releases connections.
func (rt *runtime) Close() error {
	var errs []error
	if rt.writer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rt.writer.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush pending writes: %w", err))
		}
		cancel()
	}
	if rt.redis != nil {
		errs = append(errs, rt.redis.Close())
	}
	errs = append(errs, rt.store.Close())
	return errors.Join(errs...)
}
