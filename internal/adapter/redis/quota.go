package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "factfinder:quota:submit:"

	// keyTTL outlives the UTC day the key counts, so a counter never resets early.
	keyTTL = 25 * time.Hour
)

// QuotaLimiter counts topic submissions per user per UTC day.
type QuotaLimiter struct {
	client goredis.Cmdable
	limit  int64
	now    func() time.Time
	log    *slog.Logger
}

// NewQuotaLimiter creates a limiter allowing limit submissions per user per
// day. A non-positive limit allows everything.
func NewQuotaLimiter(client goredis.Cmdable, limit int, logger *slog.Logger) *QuotaLimiter {
	return &QuotaLimiter{
		client: client,
		limit:  int64(limit),
		now:    time.Now,
		log:    logger.With("adapter", "redis_quota"),
	}
}

// Allow records one submission for userID and reports whether it is within
// the daily quota.
func (q *QuotaLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	if q.limit <= 0 {
		return true, nil
	}

	key := q.key(userID)

	// INCR and EXPIRE run in one MULTI so a counter is never left without a TTL.
	var incr *goredis.IntCmd
	_, err := q.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, keyTTL)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis quota incr %s: %w", key, err)
	}
	count := incr.Val()

	if count > q.limit {
		q.log.InfoContext(ctx, "daily quota exceeded",
			slog.String("user_id", userID),
			slog.Int64("count", count),
			slog.Int64("limit", q.limit),
		)
		return false, nil
	}

	return true, nil
}

func (q *QuotaLimiter) key(userID string) string {
	return keyPrefix + userID + ":" + q.now().UTC().Format("20060102")
}
