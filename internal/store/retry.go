package store

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/abhisek/focusloop/internal/keylock"
	"github.com/abhisek/focusloop/internal/logging"
	"github.com/sirupsen/logrus"
)

// RetryConfig controls out-of-band persistence retries.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// DefaultRetryConfig returns the retry settings used when none are configured.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 5,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     30 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryingWriter makes skill, session and note writes optimistic. Each write
// is tried once inline; when it fails the error is logged, the caller gets
// nil, and the write is queued for retry with exponential backoff by Run.
//
// Only the latest value per entity is queued: a newer write for the same
// skill or session replaces the pending one, and a successful inline write
// drops it. Writes to one entity never run concurrently, so a retry cannot
// land after a newer value.
type RetryingWriter struct {
	skills   SkillRepo
	sessions SessionRepo
	notes    NoteRepo
	cfg      RetryConfig
	log      logrus.FieldLogger
	now      func() time.Time
	locks    *keylock.Set

	mu      sync.Mutex
	pending map[string]*writeJob
	wake    chan struct{}
}

type writeJob struct {
	key     string
	attempt int
	nextAt  time.Time
	write   func(ctx context.Context) error
}

// NewRetryingWriter wraps the given repositories.
func NewRetryingWriter(skills SkillRepo, sessions SessionRepo, notes NoteRepo, cfg RetryConfig, log logrus.FieldLogger) *RetryingWriter {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &RetryingWriter{
		skills:   skills,
		sessions: sessions,
		notes:    notes,
		cfg:      cfg,
		log:      log.WithField("component", "retrying-writer"),
		now:      time.Now,
		locks:    keylock.New(),
		pending:  make(map[string]*writeJob),
		wake:     make(chan struct{}, 1),
	}
}

func (w *RetryingWriter) LoadSkills(ctx context.Context, studentID string) ([]SkillRecord, error) {
	return w.skills.LoadSkills(ctx, studentID)
}

func (w *RetryingWriter) SaveSkill(ctx context.Context, rec SkillRecord) error {
	w.write(ctx, "skill:"+rec.ID, func(ctx context.Context) error {
		return w.skills.SaveSkill(ctx, rec)
	})
	return nil
}

func (w *RetryingWriter) LoadSession(ctx context.Context, id string) (*SessionRecord, error) {
	return w.sessions.LoadSession(ctx, id)
}

func (w *RetryingWriter) SaveSession(ctx context.Context, rec SessionRecord) error {
	w.write(ctx, "session:"+rec.ID, func(ctx context.Context) error {
		return w.sessions.SaveSession(ctx, rec)
	})
	return nil
}

func (w *RetryingWriter) OpenSessions(ctx context.Context) ([]SessionRecord, error) {
	return w.sessions.OpenSessions(ctx)
}

func (w *RetryingWriter) AddNote(ctx context.Context, rec NoteRecord) error {
	w.write(ctx, "note:"+rec.ID, func(ctx context.Context) error {
		return w.notes.AddNote(ctx, rec)
	})
	return nil
}

func (w *RetryingWriter) ListNotes(ctx context.Context, studentID string, limit int) ([]NoteRecord, error) {
	return w.notes.ListNotes(ctx, studentID, limit)
}

// Pending returns the number of queued writes.
func (w *RetryingWriter) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

func (w *RetryingWriter) write(ctx context.Context, key string, fn func(context.Context) error) {
	unlock := w.locks.Lock(key)
	defer unlock()

	err := fn(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err == nil {
		delete(w.pending, key)
		return
	}

	w.log.WithError(err).WithField("key", key).Warn("write failed, queued for retry")
	w.pending[key] = &writeJob{
		key:     key,
		attempt: 1,
		nextAt:  w.now().Add(w.backoff(1)),
		write:   fn,
	}
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Run retries queued writes until ctx is cancelled. Pending writes are
// attempted one final time on shutdown.
func (w *RetryingWriter) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		w.resetTimer(timer)
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := w.Flush(flushCtx); err != nil {
				w.log.WithError(err).Error("writes still pending at shutdown")
			}
			return nil
		case <-w.wake:
		case <-timer.C:
			w.retryDue(ctx, false)
		}
	}
}

// Flush attempts every queued write once, regardless of its schedule.
// Writes that fail again stay queued; the returned error joins their causes.
func (w *RetryingWriter) Flush(ctx context.Context) error {
	return w.retryDue(ctx, true)
}

func (w *RetryingWriter) retryDue(ctx context.Context, all bool) error {
	now := w.now()

	w.mu.Lock()
	var due []*writeJob
	for _, job := range w.pending {
		if all || !job.nextAt.After(now) {
			due = append(due, job)
		}
	}
	w.mu.Unlock()

	var errs []error
	for _, job := range due {
		if err := w.retry(ctx, job); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// retry runs one queued job under its key lock unless a newer write has
// superseded it.
func (w *RetryingWriter) retry(ctx context.Context, job *writeJob) error {
	unlock := w.locks.Lock(job.key)
	defer unlock()

	w.mu.Lock()
	current := w.pending[job.key] == job
	w.mu.Unlock()
	if !current {
		return nil
	}

	err := job.write(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case err == nil:
		delete(w.pending, job.key)
		w.log.WithField("key", job.key).WithField("attempt", job.attempt+1).Info("queued write persisted")
		return nil
	case job.attempt+1 >= w.cfg.MaxAttempts:
		delete(w.pending, job.key)
		w.log.WithError(err).WithField("key", job.key).Error("dropping write after max attempts")
		return err
	default:
		job.attempt++
		job.nextAt = w.now().Add(w.backoff(job.attempt))
		return err
	}
}

func (w *RetryingWriter) resetTimer(timer *time.Timer) {
	w.mu.Lock()
	var next time.Time
	for _, job := range w.pending {
		if next.IsZero() || job.nextAt.Before(next) {
			next = job.nextAt
		}
	}
	w.mu.Unlock()

	wait := time.Hour
	if !next.IsZero() {
		wait = max(next.Sub(w.now()), 0)
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(wait)
}

// backoff computes the wait before the given retry attempt (1-based).
func (w *RetryingWriter) backoff(attempt int) time.Duration {
	wait := float64(w.cfg.InitialWait) * math.Pow(w.cfg.Multiplier, float64(attempt-1))
	if wait > float64(w.cfg.MaxWait) {
		wait = float64(w.cfg.MaxWait)
	}

	// Add ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
