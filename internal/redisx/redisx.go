// Package redisx backs the performance cache and domain event fan-out with
// Redis.
package redisx

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Config selects the Redis server. An empty Addr disables Redis.
type Config struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	Channel   string        `mapstructure:"channel"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// DefaultConfig returns Redis settings with Redis disabled.
func DefaultConfig() Config {
	return Config{
		Channel:   "focusloop.events",
		KeyPrefix: "focusloop:",
		CacheTTL:  24 * time.Hour,
	}
}

// Enabled reports whether a server address is configured.
func (c Config) Enabled() bool { return strings.TrimSpace(c.Addr) != "" }

// Dial connects and pings the server.
func Dial(ctx context.Context, cfg Config) (*goredis.Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("redis address is not configured")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
