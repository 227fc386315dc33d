package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"scriptvault/internal/clients/redis"
	"scriptvault/internal/observability"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	window = time.Minute
	// maxLocalLimiters bounds the in-process fallback before idle keys are swept
	maxLocalLimiters = 10000
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// windowStore is the subset of the Redis client used for sliding windows
type windowStore interface {
	ZRemRangeByScore(ctx context.Context, key, min, max string) error
	ZCard(ctx context.Context, key string) (int64, error)
	ZAdd(ctx context.Context, key string, members ...goredis.Z) error
	ZRangeWithScores(ctx context.Context, key string, start, stop int64) ([]goredis.Z, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
}

type localLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Service limits requests per key per minute
type Service struct {
	redis  windowStore
	logger *observability.Logger
	now    func() time.Time

	mu    sync.Mutex
	local map[string]*localLimiter
}

// NewService creates a rate limiting service. A nil or disabled Redis client
// leaves only the in-process limiter.
func NewService(client *redis.Client, logger *observability.Logger) *Service {
	var store windowStore
	if client.IsEnabled() {
		store = client
	}
	return newService(store, logger)
}

func newService(store windowStore, logger *observability.Logger) *Service {
	return &Service{
		redis:  store,
		logger: logger,
		now:    time.Now,
		local:  make(map[string]*localLimiter),
	}
}

// Allow records one request for key and reports whether it fits in the
// limit. Redis is preferred; any Redis failure falls back to the in-process limiter.
func (s *Service) Allow(ctx context.Context, key string, limitPerMinute int) Result {
	if limitPerMinute <= 0 {
		return Result{Allowed: true}
	}
	if s.redis != nil {
		result, err := s.allowRedis(ctx, key, limitPerMinute)
		if err == nil {
			return result
		}
		s.logger.Error(ctx, "Redis rate limit check failed, falling back to in-process limiter", err)
	}
	return s.allowLocal(key, limitPerMinute)
}

// allowRedis implements a sliding window over a sorted set.
// Key: rl:{key}. Members are unique per request, scored by time in milliseconds.
func (s *Service) allowRedis(ctx context.Context, key string, limit int) (Result, error) {
	redisKey := "rl:" + key
	now := s.now()
	windowStartMs := now.Add(-window).UnixMilli()

	if err := s.redis.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStartMs)); err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := s.redis.ZCard(ctx, redisKey)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= limit {
		retryAfter := window
		oldest, err := s.redis.ZRangeWithScores(ctx, redisKey, 0, 0)
		if err == nil && len(oldest) > 0 {
			retryAfter = time.UnixMilli(int64(oldest[0].Score)).Add(window).Sub(now)
			if retryAfter < 0 {
				retryAfter = 0
			}
		}
		return Result{Allowed: false, Limit: limit, Remaining: 0, RetryAfter: retryAfter}, nil
	}

	nowMs := now.UnixMilli()
	err = s.redis.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d-%s", nowMs, uuid.NewString()),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.redis.Expire(ctx, redisKey, 2*window); err != nil {
		s.logger.Warn(ctx, "failed to set expiration on rate limit key")
	}

	return Result{Allowed: true, Limit: limit, Remaining: limit - int(count) - 1}, nil
}

// allowLocal uses a token bucket per key refilling limit tokens per minute
func (s *Service) allowLocal(key string, limit int) Result {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.local) >= maxLocalLimiters {
		s.sweep(now)
	}

	entryKey := fmt.Sprintf("%s|%d", key, limit)
	entry, ok := s.local[entryKey]
	if !ok {
		entry = &localLimiter{limiter: rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)}
		s.local[entryKey] = entry
	}
	entry.lastSeen = now

	reservation := entry.limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Result{Allowed: false, Limit: limit, Remaining: 0, RetryAfter: delay}
	}

	remaining := int(entry.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return Result{Allowed: true, Limit: limit, Remaining: remaining}
}

// sweep drops limiters idle for longer than a full window. Caller holds s.mu.
func (s *Service) sweep(now time.Time) {
	for k, entry := range s.local {
		if now.Sub(entry.lastSeen) > window {
			delete(s.local, k)
		}
	}
}
