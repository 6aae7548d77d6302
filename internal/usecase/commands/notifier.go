package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

type ConfirmedParticipant struct {
	Email              string
	Name               string
	Category           string
	Value              pricing.Money
	IsFree             bool
	RegistrationNumber string
}

type ConfirmedEvent struct {
	ID       uuid.UUID
	Name     string
	StartsAt time.Time
	Location string
}

// Confirmation is what participants are told once a submission committed.
type Confirmation struct {
	CheckoutID   uuid.UUID
	Locale       checkout.Locale
	Event        ConfirmedEvent
	Participants []ConfirmedParticipant
	Subtotal     pricing.Money
	Fee          pricing.Money
	Total        pricing.Money
}

// ConfirmationChannel delivers a confirmation somewhere: email, event stream.
type ConfirmationChannel interface {
	Name() string
	Send(ctx context.Context, c Confirmation) error
}

type Notifier interface {
	Dispatch(ctx context.Context, c Confirmation)
}

// NotificationDispatcher sends confirmations in the background. The caller
// never waits and never sees a failure.
type NotificationDispatcher struct {
	channels []ConfirmationChannel
	timeout  time.Duration
	logger   *slog.Logger
	wg       sync.WaitGroup
}

func NewNotificationDispatcher(channels []ConfirmationChannel, timeout time.Duration, logger *slog.Logger) *NotificationDispatcher {
	return &NotificationDispatcher{
		channels: channels,
		timeout:  timeout,
		logger:   logger,
	}
}

func (d *NotificationDispatcher) Dispatch(ctx context.Context, c Confirmation) {
	if len(d.channels) == 0 {
		return
	}

	// The request is over by the time channels run.
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		for _, ch := range d.channels {
			if err := ch.Send(ctx, c); err != nil {
				d.logger.WarnContext(ctx, "confirmation delivery failed",
					"channel", ch.Name(),
					"checkout_id", c.CheckoutID.String(),
					"error", err.Error())
				continue
			}
			d.logger.InfoContext(ctx, "confirmation delivered",
				"channel", ch.Name(),
				"checkout_id", c.CheckoutID.String(),
				"participants", len(c.Participants))
		}
	}()
}

// Wait blocks until in-flight dispatches finish or ctx ends.
func (d *NotificationDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
