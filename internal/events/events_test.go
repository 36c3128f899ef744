package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxEmitDrain(t *testing.T) {
	o := NewOutbox(0)
	o.Emit(Event{Kind: KindConceptMastered, Subtopic: "a"})
	o.Emit(Event{ID: "fixed", Kind: KindDifficultyAdjusted})
	require.Equal(t, 2, o.Len())

	got := o.Drain()
	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, "fixed", got[1].ID)
	assert.Equal(t, 0, o.Len())
	assert.Empty(t, o.Drain())
}

func TestOutboxDropsOldest(t *testing.T) {
	o := NewOutbox(3)
	for i := 0; i < 5; i++ {
		o.Emit(Event{Reason: fmt.Sprint(i)})
	}
	got := o.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].Reason)
	assert.Equal(t, 2, o.Dropped())
}

func TestOutboxRequeueKeepsOrder(t *testing.T) {
	o := NewOutbox(10)
	o.Emit(Event{Reason: "first"})
	batch := o.Drain()
	o.Emit(Event{Reason: "second"})
	o.Requeue(batch)

	got := o.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Reason)
	assert.Equal(t, "second", got[1].Reason)
}

func TestOutboxConcurrentEmit(t *testing.T) {
	o := NewOutbox(1000)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				o.Emit(Event{Kind: KindNoteRaised})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 200, o.Len())
}

type recordingPublisher struct {
	mu      sync.Mutex
	batches [][]Event
	fail    bool
}

func (p *recordingPublisher) Publish(_ context.Context, batch []Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker down")
	}
	p.batches = append(p.batches, batch)
	return nil
}

func TestRelayFlush(t *testing.T) {
	o := NewOutbox(10)
	pub := &recordingPublisher{fail: true}
	r := NewRelay(o, pub, time.Millisecond, nil)

	o.Emit(Event{Reason: "x"})
	assert.Equal(t, 0, r.Flush(context.Background()))
	assert.Equal(t, 1, o.Len(), "failed batch should be requeued")

	pub.fail = false
	assert.Equal(t, 1, r.Flush(context.Background()))
	assert.Equal(t, 0, o.Len())
	require.Len(t, pub.batches, 1)
}

func TestRelayRunFlushesOnShutdown(t *testing.T) {
	o := NewOutbox(10)
	pub := &recordingPublisher{}
	r := NewRelay(o, pub, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	o.Emit(Event{Reason: "late"})
	cancel()
	require.NoError(t, <-done)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.batches, 1)
	assert.Equal(t, "late", pub.batches[0][0].Reason)
}
