// Package redis provides the rate-limit counter store backed by either Redis
// or process memory, selected by configuration.
package redis

import (
	"context"
	"log/slog"

	"passport/config"
	"passport/internal/domain/lifecycle"
	"passport/internal/errors"
	"passport/internal/ratelimit"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCounterStore builds the shared rate-limit counter store. With the
// "redis" backend, counters survive restarts and are shared across replicas;
// the "memory" backend keeps everything in-process.
func NewCounterStore(params Params) (ratelimit.CounterStore, error) {
	switch params.Config.RateLimit.Store {
	case "redis":
		return newRedisStore(params)
	case "", "memory":
		params.Logger.Info("Using in-memory rate limit store")

		return ratelimit.NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("unknown rate limit store: %s", params.Config.RateLimit.Store)
	}
}

func newRedisStore(params Params) (ratelimit.CounterStore, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
		PoolSize: params.Config.Redis.PoolSize,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis rate limit store",
				slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return ratelimit.NewRedisStore(client, "ratelimit"), nil
}
