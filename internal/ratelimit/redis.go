package ratelimit

import (
	"context"
	"time"

	"passport/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// incrScript increments a key and stamps its window TTL on first use, as one
// atomic server-side step. Returns the new count and the remaining TTL in ms.
var incrScript = goredis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {count, ttl}
`)

// RedisStore is a CounterStore backed by Redis, shared across processes and
// surviving restarts. Window expiry is enforced by key TTLs.
type RedisStore struct {
	client *goredis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed counter store. prefix namespaces the
// limiter keys within the Redis keyspace.
func NewRedisStore(client *goredis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}

	return &RedisStore{client: client, prefix: prefix}
}

// Incr atomically increments the key's counter via a server-side script.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := incrScript.Run(ctx, s.client, []string{s.prefix + ":" + key}, window.Milliseconds()).Slice()
	if err != nil {
		return 0, 0, errors.Wrap(err, "run rate counter script")
	}
	if len(res) != 2 {
		return 0, 0, errors.Errorf("unexpected rate counter script reply of length %d", len(res))
	}

	count, ok := res[0].(int64)
	if !ok {
		return 0, 0, errors.New("unexpected rate counter count type")
	}
	ttlMs, ok := res[1].(int64)
	if !ok {
		return 0, 0, errors.New("unexpected rate counter ttl type")
	}

	remaining := time.Duration(ttlMs) * time.Millisecond
	if remaining < 0 {
		// PTTL returns a negative value when the key has no expiry; treat the
		// window as just started rather than failing the request.
		remaining = window
	}

	return count, remaining, nil
}
