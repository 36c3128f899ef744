package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// flakySkillRepo fails the first `failures` saves.
type flakySkillRepo struct {
	mu       sync.Mutex
	failures int
	saved    map[string]SkillRecord
	calls    int
}

func newFlakySkillRepo(failures int) *flakySkillRepo {
	return &flakySkillRepo{failures: failures, saved: make(map[string]SkillRecord)}
}

func (r *flakySkillRepo) LoadSkills(_ context.Context, studentID string) ([]SkillRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []SkillRecord
	for _, s := range r.saved {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *flakySkillRepo) SaveSkill(_ context.Context, rec SkillRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failures > 0 {
		r.failures--
		return errors.New("database is locked")
	}
	r.saved[rec.ID] = rec
	return nil
}

func testRetryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

func TestRetryingWriterInlineSuccess(t *testing.T) {
	repo := newFlakySkillRepo(0)
	w := NewRetryingWriter(repo, nil, nil, testRetryConfig(), nil)

	if err := w.SaveSkill(context.Background(), SkillRecord{ID: "sk-1", StudentID: "s"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if w.Pending() != 0 {
		t.Errorf("pending = %d, want 0", w.Pending())
	}
	if _, ok := repo.saved["sk-1"]; !ok {
		t.Error("expected skill to be saved inline")
	}
}

func TestRetryingWriterQueuesAndFlushes(t *testing.T) {
	repo := newFlakySkillRepo(1)
	w := NewRetryingWriter(repo, nil, nil, testRetryConfig(), nil)
	ctx := context.Background()

	if err := w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s", Mastery: 10}); err != nil {
		t.Fatalf("save should stay optimistic, got %v", err)
	}
	if w.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", w.Pending())
	}

	if err := w.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if w.Pending() != 0 {
		t.Errorf("pending after flush = %d, want 0", w.Pending())
	}
	if repo.saved["sk-1"].Mastery != 10 {
		t.Errorf("saved mastery = %v, want 10", repo.saved["sk-1"].Mastery)
	}
}

func TestRetryingWriterLatestValueWins(t *testing.T) {
	repo := newFlakySkillRepo(2)
	w := NewRetryingWriter(repo, nil, nil, testRetryConfig(), nil)
	ctx := context.Background()

	w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s", Mastery: 10})
	w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s", Mastery: 13})
	if w.Pending() != 1 {
		t.Fatalf("pending = %d, want 1 (one per entity)", w.Pending())
	}

	if err := w.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := repo.saved["sk-1"].Mastery; got != 13 {
		t.Errorf("saved mastery = %v, want 13", got)
	}
}

func TestRetryingWriterInlineSuccessDropsStaleJob(t *testing.T) {
	repo := newFlakySkillRepo(1)
	w := NewRetryingWriter(repo, nil, nil, testRetryConfig(), nil)
	ctx := context.Background()

	w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s", Mastery: 10})
	w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s", Mastery: 13})
	if w.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", w.Pending())
	}
	if got := repo.saved["sk-1"].Mastery; got != 13 {
		t.Errorf("saved mastery = %v, want 13", got)
	}
}

func TestRetryingWriterDropsAfterMaxAttempts(t *testing.T) {
	repo := newFlakySkillRepo(100)
	w := NewRetryingWriter(repo, nil, nil, testRetryConfig(), nil)
	ctx := context.Background()

	w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s"})
	for i := 0; i < 2; i++ {
		if err := w.Flush(ctx); err == nil {
			t.Fatalf("flush %d: expected error", i)
		}
	}
	if w.Pending() != 0 {
		t.Errorf("pending = %d, want 0 after max attempts", w.Pending())
	}
	if repo.calls != 3 {
		t.Errorf("calls = %d, want 3", repo.calls)
	}
}

func TestRetryingWriterRunRetriesInBackground(t *testing.T) {
	repo := newFlakySkillRepo(2)
	w := NewRetryingWriter(repo, nil, nil, testRetryConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	w.SaveSkill(context.Background(), SkillRecord{ID: "sk-1", StudentID: "s"})

	deadline := time.Now().Add(2 * time.Second)
	for w.Pending() > 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	cancel()
	<-done

	if w.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", w.Pending())
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.saved["sk-1"]; !ok {
		t.Error("expected background retry to persist the skill")
	}
}

// gatedSkillRepo blocks one armed save of the held mastery value until
// release is closed.
type gatedSkillRepo struct {
	*flakySkillRepo
	hold    float64
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (r *gatedSkillRepo) SaveSkill(ctx context.Context, rec SkillRecord) error {
	if rec.Mastery == r.hold && r.armed.CompareAndSwap(true, false) {
		close(r.entered)
		<-r.release
	}
	return r.flakySkillRepo.SaveSkill(ctx, rec)
}

func TestRetryingWriterRetryCannotOverwriteNewerWrite(t *testing.T) {
	repo := &gatedSkillRepo{
		flakySkillRepo: newFlakySkillRepo(1),
		hold:           10,
		entered:        make(chan struct{}),
		release:        make(chan struct{}),
	}
	w := NewRetryingWriter(repo, nil, nil, testRetryConfig(), nil)
	ctx := context.Background()

	w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s", Mastery: 10})
	if w.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", w.Pending())
	}
	repo.armed.Store(true)

	flushed := make(chan error, 1)
	go func() { flushed <- w.Flush(ctx) }()
	<-repo.entered

	saved := make(chan struct{})
	go func() {
		w.SaveSkill(ctx, SkillRecord{ID: "sk-1", StudentID: "s", Mastery: 13})
		close(saved)
	}()
	time.Sleep(20 * time.Millisecond)
	close(repo.release)

	if err := <-flushed; err != nil {
		t.Fatalf("flush: %v", err)
	}
	<-saved

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if got := repo.saved["sk-1"].Mastery; got != 13 {
		t.Errorf("saved mastery = %v, want 13", got)
	}
	if w.Pending() != 0 {
		t.Errorf("pending = %d, want 0", w.Pending())
	}
}
