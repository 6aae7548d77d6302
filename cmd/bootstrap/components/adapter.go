package components

import (
	"context"
	"log/slog"
	"net/http"

	"event-checkout/internal/infra/identityprovider"
	"event-checkout/internal/infra/notification"
	"event-checkout/internal/infra/postalcode"
	"event-checkout/internal/pkg/config"
	"event-checkout/internal/usecase/commands"
	"event-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

// AdapterModule wires the outbound collaborators: identity provider,
// postal-code directory and confirmation channels.
var AdapterModule = fx.Module("adapter",
	fx.Provide(
		fx.Annotate(
			NewIdentityProvider,
			fx.As(new(commands.IdentityProvisioner)),
		),
		fx.Annotate(
			NewPostalCodeDirectory,
			fx.As(new(queries.PostalCodeDirectory)),
		),
		func(cfg config.Config, logger *slog.Logger) notification.Mailer {
			return notification.NewMailer(cfg.Mailer, logger)
		},
		notification.NewRenderer,
		NewConfirmationChannels,
	),
)

func NewIdentityProvider(cfg config.Config) *identityprovider.Client {
	httpClient := &http.Client{Timeout: cfg.IdentityProvider.Timeout}
	return identityprovider.NewClient(httpClient, cfg.IdentityProvider.BaseURL, cfg.IdentityProvider.APIKey)
}

func NewPostalCodeDirectory(cfg config.Config) *postalcode.Client {
	httpClient := &http.Client{Timeout: cfg.PostalCode.Timeout}
	return postalcode.NewClient(httpClient, cfg.PostalCode.BaseURL)
}

// NewConfirmationChannels always mails participants; the event stream is
// only published when brokers are configured.
func NewConfirmationChannels(
	lc fx.Lifecycle,
	cfg config.Config,
	mailer notification.Mailer,
	renderer *notification.Renderer,
	logger *slog.Logger,
) []commands.ConfirmationChannel {
	channels := []commands.ConfirmationChannel{
		notification.NewEmailChannel(mailer, renderer),
	}

	if hasBrokers(cfg.Kafka.Brokers) {
		kafkaChannel := notification.NewKafkaChannel(cfg.Kafka)
		channels = append(channels, kafkaChannel)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return kafkaChannel.Close()
			},
		})
		logger.Info("checkout events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	return channels
}

func hasBrokers(brokers []string) bool {
	for _, b := range brokers {
		if b != "" {
			return true
		}
	}
	return false
}
