package ratelimit

import (
	"context"
	"time"
)

// CounterStore is the per-key fixed-window counter behind a limiter.
// Implementations must make Incr atomic per key: increment the key's count in
// the current window and return the new count plus the time remaining until
// the window resets.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, remaining time.Duration, err error)
}
