package notification

import (
	"context"
	"errors"

	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"
)

// EmailChannel mails every participant their own copy of the confirmation.
type EmailChannel struct {
	mailer   Mailer
	renderer *Renderer
}

var _ commands.ConfirmationChannel = (*EmailChannel)(nil)

func NewEmailChannel(mailer Mailer, renderer *Renderer) *EmailChannel {
	return &EmailChannel{mailer: mailer, renderer: renderer}
}

func (c *EmailChannel) Name() string { return "email" }

// Send keeps going after a failed recipient and reports every failure.
func (c *EmailChannel) Send(ctx context.Context, conf commands.Confirmation) error {
	payload := NewPayload(conf)

	var failures []error
	for _, p := range payload.Participants {
		if p.Email == "" {
			continue
		}
		email, err := c.renderer.Render(conf.Locale, EmailData{Payload: payload, Recipient: p})
		if err != nil {
			return err
		}
		if err := c.mailer.Send(ctx, p.Email, email); err != nil {
			failures = append(failures, errs.Wrapf(err, "registration %s", p.RegistrationNumber))
		}
	}
	return errors.Join(failures...)
}
