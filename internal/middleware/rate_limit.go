package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyPrefix         string
	Message           string
}

// DefaultRateLimitConfig returns the limit applied to write endpoints
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 30,
		KeyPrefix:         "album:ratelimit:",
		Message:           "Too many requests. Please try again shortly.",
	}
}

// Limiter decides whether key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int64, err error)
}

// rateLimitScript is an atomic Lua script for sliding window rate limiting
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local window_start = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
local count = redis.call('ZCARD', key)

if count < limit then
    redis.call('ZADD', key, now, now .. ':' .. math.random(1000000))
    redis.call('EXPIRE', key, math.ceil(window / 1000) + 1)
    return {1, limit - count - 1}
end
return {0, 0}
`)

type redisLimiter struct {
	client *redis.Client
	limit  int
}

// NewRedisLimiter shares one sliding window per key across instances
func NewRedisLimiter(client *redis.Client, requestsPerMinute int) Limiter {
	return &redisLimiter{client: client, limit: requestsPerMinute}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, int64, error) {
	result, err := rateLimitScript.Run(ctx, l.client, []string{key},
		l.limit, int64(60*1000), time.Now().UnixMilli(),
	).Int64Slice()
	if err != nil {
		return false, 0, err
	}
	return result[0] == 1, result[1], nil
}

// bucketIdleAfter is how long an unused bucket is kept. A bucket refills
// completely within a minute, so an idle one is the same as a new one.
const bucketIdleAfter = 2 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryLimiter is a per-process token bucket per key, used without Redis
type memoryLimiter struct {
	mu        sync.Mutex
	limit     int
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryLimiter creates an in-process limiter
func NewMemoryLimiter(requestsPerMinute int) Limiter {
	return &memoryLimiter{limit: requestsPerMinute, buckets: make(map[string]*bucket), now: time.Now}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, int64, error) {
	now := l.now()

	l.mu.Lock()
	l.sweep(now)
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.limit)), l.limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	allowed := b.limiter.AllowN(now, 1)
	remaining := int64(b.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining, nil
}

// sweep drops idle buckets, at most once per bucketIdleAfter. Caller holds l.mu.
func (l *memoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < bucketIdleAfter {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= bucketIdleAfter {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimitPerUser rate limits by authenticated user, falling back to client IP
func RateLimitPerUser(limiter Limiter, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || cfg.RequestsPerMinute <= 0 {
			c.Next()
			return
		}

		id := GetUserID(c)
		if id == "" {
			id = "ip:" + c.ClientIP()
		}

		allowed, remaining, err := limiter.Allow(c.Request.Context(), cfg.KeyPrefix+id)
		if err != nil {
			// Fail open
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if !allowed {
			c.Header("Retry-After", "60")
			common.ErrorResponse(c, http.StatusTooManyRequests, cfg.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
