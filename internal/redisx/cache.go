package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/mastery"
	goredis "github.com/redis/go-redis/v9"
)

// PerformanceCache stores performance states as JSON values with a TTL.
type PerformanceCache struct {
	rdb    goredis.Cmdable
	prefix string
	ttl    time.Duration
}

var _ mastery.PerformanceCache = (*PerformanceCache)(nil)

// NewPerformanceCache creates a cache over rdb. A zero ttl keeps entries
// forever.
func NewPerformanceCache(rdb goredis.Cmdable, prefix string, ttl time.Duration) *PerformanceCache {
	return &PerformanceCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *PerformanceCache) key(studentID string) string {
	return c.prefix + "perf:" + studentID
}

func (c *PerformanceCache) Get(ctx context.Context, studentID string) (*mastery.PerformanceState, error) {
	raw, err := c.rdb.Get(ctx, c.key(studentID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Unavailable("redis get performance", err)
	}
	var p mastery.PerformanceState
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode cached performance: %w", err)
	}
	return &p, nil
}

func (c *PerformanceCache) Put(ctx context.Context, state *mastery.PerformanceState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode performance: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key(state.StudentID), raw, c.ttl).Err(); err != nil {
		return apperr.Unavailable("redis set performance", err)
	}
	return nil
}
