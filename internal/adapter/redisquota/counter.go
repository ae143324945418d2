// Package redisquota tracks daily Drive API usage in Redis so the
// catalog stays inside the provider's free request quota.
package redisquota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultDailyLimit matches the free-tier Drive API request quota.
const DefaultDailyLimit = 20000

// counterTTL keeps stale day keys from accumulating. Quota days are
// UTC-aligned, so 48h is always past the key's own day boundary.
const counterTTL = 48 * time.Hour

// Counter is a per-day API call counter backed by Redis.
type Counter struct {
	client *redis.Client
	limit  int64
	now    func() time.Time
}

func NewCounter(client *redis.Client, dailyLimit int64) *Counter {
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	return &Counter{
		client: client,
		limit:  dailyLimit,
		now:    time.Now,
	}
}

func (c *Counter) key() string {
	return "drive:quota:" + c.now().UTC().Format("2006-01-02")
}

// Increment records one API call and reports whether the daily limit
// has been reached.
func (c *Counter) Increment(ctx context.Context) (exceeded bool, err error) {
	key := c.key()

	pipe := c.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, counterTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("increment quota counter: %w", err)
	}

	return incr.Val() > c.limit, nil
}

// Used returns the number of API calls recorded today.
func (c *Counter) Used(ctx context.Context) (int64, error) {
	n, err := c.client.Get(ctx, c.key()).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get quota counter: %w", err)
	}
	return n, nil
}

// Stats reports today's usage against the configured limit.
func (c *Counter) Stats(ctx context.Context) (used, limit int64, err error) {
	used, err = c.Used(ctx)
	if err != nil {
		return 0, 0, err
	}
	return used, c.limit, nil
}
