package bootstrap

import (
	"context"

	"event-checkout/internal/pkg/config"
	"event-checkout/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetry,
	),
	fx.Invoke(func(*telemetry.Provider) {}),
)

func NewTelemetry(lc fx.Lifecycle, cfg config.Config) (*telemetry.Provider, error) {
	provider, err := telemetry.Init(context.Background(), cfg.Telemetry, cfg.AppEnv)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})

	return provider, nil
}
