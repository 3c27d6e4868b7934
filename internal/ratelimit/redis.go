package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/crrd/internal/logger"
)

const (
	redisKeyPrefix = "crrd:ratelimit:"
	redisTimeout   = 250 * time.Millisecond
)

type redisLimiter struct {
	client  redis.Cmdable
	logger  *logger.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewRedisLimiter returns a [Limiter] whose counters live in Redis. The
// client is owned by the caller; Close does not close it.
//
// Redis failures fail open: the request is allowed and the error is logged.
func NewRedisLimiter(client redis.Cmdable, log *logger.Logger) Limiter {
	return &redisLimiter{
		client:  client,
		logger:  log,
		timeout: redisTimeout,
		now:     time.Now,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) Decision {
	if limit <= 0 {
		return Decision{Allowed: true}
	}
	if window <= 0 {
		window = time.Minute
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	redisKey := redisKeyPrefix + key
	counter, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logRedisError("incr", err)
		return Decision{Allowed: true}
	}
	if counter == 1 {
		if err = l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			l.logRedisError("expire", err)
		}
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl <= 0 {
		ttl = window
	}

	return Decision{
		Allowed:   int(counter) <= limit,
		Count:     int(counter),
		WindowEnd: l.now().Add(ttl),
	}
}

func (l *redisLimiter) Close() {}

func (l *redisLimiter) logRedisError(op string, err error) {
	l.logger.Error().Err(err).Str("func", "*redisLimiter.Allow").Str("op", op).Msg("redis rate limiter error")
}
