// Package redis throttles submissions with a fixed window counter in Redis.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/rewards-server/internal/model"
)

const defaultPrefix = "rewards:rate_limit"

var fixedWindowScript = goredis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

var _ model.RateLimiter = (*Limiter)(nil)

// Limiter allows at most limit submissions per user per window.
type Limiter struct {
	client goredis.UniversalClient
	prefix string
	limit  int64
	window time.Duration
}

// NewLimiter allows limit submissions per user in each fixed window. Keys are
// namespaced by prefix.
func NewLimiter(client goredis.UniversalClient, prefix string, limit int, window time.Duration) *Limiter {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultPrefix
	}
	if window < time.Second {
		window = time.Second
	}
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

// NewClient parses a redis:// URL into a client.
func NewClient(redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return goredis.NewClient(opts), nil
}

// Allow counts the attempt and reports whether it is within the limit.
// A non-positive limit disables throttling.
func (l *Limiter) Allow(ctx context.Context, userID model.UserID) (bool, error) {
	if l == nil || l.client == nil || l.limit <= 0 {
		return true, nil
	}

	key := l.key(userID)
	count, err := fixedWindowScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to run rate limit script: %w", err)
	}

	return count <= l.limit, nil
}

func (l *Limiter) key(userID model.UserID) string {
	return fmt.Sprintf("%s:submit:%s", l.prefix, userID.String())
}
