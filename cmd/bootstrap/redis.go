package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"event-checkout/internal/pkg/config"
	"event-checkout/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		fx.Annotate(
			NewRedisClient,
			fx.As(new(redis.UniversalClient)),
		),
	),
)

// NewRedisClient pings with retries so the app can start alongside Redis.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= cfg.Redis.MaxRetries; attempt++ {
		if attempt > 0 {
			logger.Warn("redis not ready, retrying", "attempt", attempt, "error", lastErr)
			time.Sleep(cfg.Redis.RetryBackoff)
		}
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			break
		}
	}
	if lastErr != nil {
		_ = client.Close()
		return nil, errs.Wrapf(lastErr, "connect to redis after %d attempts", cfg.Redis.MaxRetries+1)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
