// Package cache holds rendered exports in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ExportCache stores PDFs under opaque keys with a fixed TTL.
type ExportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewExportCache connects to the server at url (redis://...) and pings it.
func NewExportCache(ctx context.Context, url string, ttl time.Duration) (*ExportCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(rdb, ttl), nil
}

func New(rdb *redis.Client, ttl time.Duration) *ExportCache {
	return &ExportCache{rdb: rdb, ttl: ttl}
}

func (c *ExportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *ExportCache) Set(ctx context.Context, key string, pdf []byte) error {
	return c.rdb.Set(ctx, key, pdf, c.ttl).Err()
}

func (c *ExportCache) Close() error {
	return c.rdb.Close()
}
