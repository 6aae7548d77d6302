package notification

import (
	"context"
	"encoding/json"
	"time"

	"event-checkout/internal/pkg/config"
	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaChannel publishes one message per checkout, keyed by checkout id.
type KafkaChannel struct {
	writer messageWriter
}

var _ commands.ConfirmationChannel = (*KafkaChannel)(nil)

func NewKafkaChannel(cfg config.KafkaConfig) *KafkaChannel {
	return &KafkaChannel{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (c *KafkaChannel) Name() string { return "kafka" }

func (c *KafkaChannel) Send(ctx context.Context, conf commands.Confirmation) error {
	value, err := json.Marshal(NewPayload(conf))
	if err != nil {
		return errs.Wrap(err, "marshal confirmation")
	}

	err = c.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(conf.CheckoutID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("checkout.confirmed")},
			{Key: "locale", Value: []byte(conf.Locale)},
		},
	})
	if err != nil {
		return errs.Wrap(err, "publish confirmation")
	}
	return nil
}

func (c *KafkaChannel) Close() error {
	return c.writer.Close()
}
