package redisx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/abhisek/focusloop/internal/events"
	"github.com/abhisek/focusloop/internal/mastery"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestDial(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := Dial(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	_ = rdb.Close()

	_, err = Dial(context.Background(), Config{})
	require.Error(t, err)
}

func TestPerformanceCache(t *testing.T) {
	mr, rdb := newClient(t)
	ctx := context.Background()
	c := NewPerformanceCache(rdb, "test:", time.Hour)

	got, err := c.Get(ctx, "stu")
	require.NoError(t, err)
	assert.Nil(t, got)

	p := mastery.NewPerformanceState("stu", 10)
	p.Record(mastery.AnswerRecord{SkillID: "sk", Correct: true, TimeSecs: 12}, 3, mastery.DefaultStruggleThresholds())
	require.NoError(t, c.Put(ctx, p))
	assert.True(t, mr.Exists("test:perf:stu"))
	assert.Equal(t, time.Hour, mr.TTL("test:perf:stu"))

	got, err = c.Get(ctx, "stu")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.AccuracyRate, got.AccuracyRate)
	assert.Len(t, got.RecentAnswers, 1)

	mr.FastForward(2 * time.Hour)
	got, err = c.Get(ctx, "stu")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPerformanceCacheUnavailable(t *testing.T) {
	mr, rdb := newClient(t)
	c := NewPerformanceCache(rdb, "", 0)
	mr.Close()

	_, err := c.Get(context.Background(), "stu")
	require.Error(t, err)
}

func TestPublisher(t *testing.T) {
	_, rdb := newClient(t)
	ctx := context.Background()

	sub := rdb.Subscribe(ctx, "events")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewPublisher(rdb, "events")
	require.NoError(t, pub.Publish(ctx, nil))
	require.NoError(t, pub.Publish(ctx, []events.Event{
		{ID: "1", Kind: events.KindConceptMastered, Subtopic: "equal parts"},
		{ID: "2", Kind: events.KindDifficultyAdjusted, From: "easy", To: "medium"},
	}))

	ch := sub.Channel()
	for _, want := range []string{"1", "2"} {
		select {
		case msg := <-ch:
			var e events.Event
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &e))
			assert.Equal(t, want, e.ID)
		case <-time.After(2 * time.Second):
			t.Fatalf("event %s not delivered", want)
		}
	}
}
