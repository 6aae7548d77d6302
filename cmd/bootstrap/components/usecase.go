package components

import (
	"context"
	"log/slog"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/pkg/clock"
	"event-checkout/internal/pkg/config"
	"event-checkout/internal/usecase"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *pricing.Calculator {
		return pricing.NewCalculator(cfg.Checkout.FeeCents)
	},
	func(cfg config.Config) checkout.Countries {
		return checkout.Countries{
			Primary:   cfg.Checkout.PrimaryCountry,
			Secondary: cfg.Checkout.SecondaryCountry,
		}
	},
	checkout.NewValidationGate,
	checkout.NewNavigator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryReservation,
		commands.NewRegistrationCommitter,
		commands.NewIdentityResolver,
		fx.Annotate(
			NewNotificationDispatcher,
			fx.As(new(commands.Notifier)),
		),
		func(cfg config.Config, countries checkout.Countries) commands.CheckoutSettings {
			return commands.CheckoutSettings{
				Countries:        countries,
				ConfirmationPath: cfg.Checkout.ConfirmationPath,
			}
		},
		commands.NewCheckoutUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
		queries.NewPostalCodeQueries,
		queries.NewProfileQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewNotificationDispatcher drains in-flight confirmations on shutdown.
func NewNotificationDispatcher(
	lc fx.Lifecycle,
	channels []commands.ConfirmationChannel,
	cfg config.Config,
	logger *slog.Logger,
) *commands.NotificationDispatcher {
	d := commands.NewNotificationDispatcher(channels, cfg.Checkout.NotifyTimeout, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Wait(ctx)
		},
	})
	return d
}
