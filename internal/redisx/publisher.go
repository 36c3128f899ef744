package redisx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/focusloop/internal/apperr"
	"github.com/abhisek/focusloop/internal/events"
	goredis "github.com/redis/go-redis/v9"
)

// Publisher fans domain events out on a pub/sub channel, one message per
// event.
type Publisher struct {
	rdb     goredis.Cmdable
	channel string
}

var _ events.Publisher = (*Publisher)(nil)

// NewPublisher creates a publisher for channel.
func NewPublisher(rdb goredis.Cmdable, channel string) *Publisher {
	return &Publisher{rdb: rdb, channel: channel}
}

// Publish sends the batch in one pipeline.
func (p *Publisher) Publish(ctx context.Context, batch []events.Event) error {
	if len(batch) == 0 {
		return nil
	}
	_, err := p.rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, e := range batch {
			raw, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("encode event %s: %w", e.ID, err)
			}
			pipe.Publish(ctx, p.channel, raw)
		}
		return nil
	})
	if err != nil {
		return apperr.Unavailable("redis publish", err)
	}
	return nil
}
