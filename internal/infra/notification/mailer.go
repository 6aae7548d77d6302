package notification

import (
	"context"
	"fmt"
	"log/slog"

	"event-checkout/internal/pkg/config"
	"event-checkout/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer interface {
	Send(ctx context.Context, to string, email Email) error
}

// NewMailer picks the provider from config: "ses" sends through AWS SES,
// anything else drops messages after logging them.
func NewMailer(cfg config.MailerConfig, logger *slog.Logger) Mailer {
	switch cfg.Provider {
	case "ses":
		awsCfg := aws.Config{
			Region: cfg.SESRegion,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.SESAccessKeyID, cfg.SESSecretAccessKey, ""),
			),
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: cfg.FromAddress,
			fromName:    cfg.FromName,
		}
	case "noop":
		return &noopMailer{logger: logger}
	default:
		logger.Warn("unknown mailer provider, using noop", "provider", cfg.Provider)
		return &noopMailer{logger: logger}
	}
}

type sesSender interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesMailer struct {
	client      sesSender
	fromAddress string
	fromName    string
}

func (m *sesMailer) Send(ctx context.Context, to string, email Email) error {
	source := m.fromAddress
	if m.fromName != "" {
		source = fmt.Sprintf("%s <%s>", m.fromName, m.fromAddress)
	}

	body := &types.Body{
		Html: &types.Content{Data: aws.String(email.HTML), Charset: aws.String("UTF-8")},
	}
	if email.Text != "" {
		body.Text = &types.Content{Data: aws.String(email.Text), Charset: aws.String("UTF-8")}
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	})
	if err != nil {
		return errs.Wrapf(err, "ses send to %s", to)
	}
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(_ context.Context, to string, email Email) error {
	m.logger.Debug("mail dropped", "to", to, "subject", email.Subject)
	return nil
}
