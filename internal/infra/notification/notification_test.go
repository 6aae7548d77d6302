//go:build unit

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"event-checkout/internal/domain/checkout"
	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/pkg/config"
	"event-checkout/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfirmation(locale checkout.Locale) commands.Confirmation {
	return commands.Confirmation{
		CheckoutID: uuid.MustParse("7b0c1d5e-3f7a-4a41-9a2e-6f1e2d3c4b5a"),
		Locale:     locale,
		Event: commands.ConfirmedEvent{
			ID:       uuid.New(),
			Name:     "Meia Maratona do Rio",
			StartsAt: time.Date(2026, 6, 14, 7, 30, 0, 0, time.UTC),
			Location: "Aterro do Flamengo",
		},
		Participants: []commands.ConfirmedParticipant{
			{Email: "ana@example.com", Name: "Ana", Category: "21K", Value: pricing.NewMoney(2500), RegistrationNumber: "RUN-0001"},
			{Email: "bia@example.com", Name: "Bia", Category: "Kids", IsFree: true, RegistrationNumber: "RUN-0002"},
		},
		Subtotal: pricing.NewMoney(2500),
		Fee:      pricing.NewMoney(500),
		Total:    pricing.NewMoney(3000),
	}
}

type recordingMailer struct {
	sent []string
	last Email
	fail map[string]error
}

func (m *recordingMailer) Send(_ context.Context, to string, email Email) error {
	if err := m.fail[to]; err != nil {
		return err
	}
	m.sent = append(m.sent, to)
	m.last = email
	return nil
}

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	return &ses.SendEmailOutput{}, f.err
}

func TestNewPayload(t *testing.T) {
	p := NewPayload(sampleConfirmation(checkout.LocalePT))

	assert.Equal(t, "14/06/2026", p.Event.Date)
	assert.Equal(t, "07:30", p.Event.Time)
	assert.Equal(t, "25.00", p.Participants[0].Value)
	assert.Equal(t, "0.00", p.Participants[1].Value)
	assert.True(t, p.Participants[1].IsFree)
	assert.Equal(t, FinancialPayload{Subtotal: "25.00", Fee: "5.00", Total: "30.00"}, p.Financial)
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()
	conf := sampleConfirmation(checkout.LocalePT)
	payload := NewPayload(conf)

	tests := []struct {
		name        string
		locale      checkout.Locale
		wantSubject string
		wantFree    string
	}{
		{name: "portuguese", locale: checkout.LocalePT, wantSubject: "Inscrição confirmada: Meia Maratona do Rio (RUN-0001)", wantFree: "Gratuito"},
		{name: "spanish", locale: checkout.LocaleES, wantSubject: "Inscripción confirmada: Meia Maratona do Rio (RUN-0001)", wantFree: "Gratis"},
		{name: "english", locale: checkout.LocaleEN, wantSubject: "Registration confirmed: Meia Maratona do Rio (RUN-0001)", wantFree: "Free"},
		{name: "unknown locale uses portuguese", locale: checkout.Locale("fr"), wantSubject: "Inscrição confirmada: Meia Maratona do Rio (RUN-0001)", wantFree: "Gratuito"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := r.Render(tt.locale, EmailData{Payload: payload, Recipient: payload.Participants[0]})
			require.NoError(t, err)

			assert.Equal(t, tt.wantSubject, email.Subject)
			assert.Contains(t, email.HTML, "Ana")
			assert.Contains(t, email.HTML, "RUN-0002")
			assert.Contains(t, email.HTML, tt.wantFree)
			assert.Contains(t, email.Text, "30.00")
			assert.Contains(t, email.Text, "14/06/2026")
		})
	}

	t.Run("html escapes participant input", func(t *testing.T) {
		p := payload
		p.Participants = []ParticipantPayload{{Name: "<script>x</script>", RegistrationNumber: "RUN-0003"}}
		email, err := r.Render(checkout.LocaleEN, EmailData{Payload: p, Recipient: p.Participants[0]})
		require.NoError(t, err)
		assert.NotContains(t, email.HTML, "<script>")
		assert.Contains(t, email.Text, "<script>")
	})
}

func TestEmailChannel_Send(t *testing.T) {
	t.Run("one mail per participant", func(t *testing.T) {
		mailer := &recordingMailer{}
		ch := NewEmailChannel(mailer, NewRenderer())

		err := ch.Send(context.Background(), sampleConfirmation(checkout.LocaleEN))
		require.NoError(t, err)

		assert.Equal(t, "email", ch.Name())
		assert.Equal(t, []string{"ana@example.com", "bia@example.com"}, mailer.sent)
		assert.Equal(t, "Registration confirmed: Meia Maratona do Rio (RUN-0002)", mailer.last.Subject)
	})

	t.Run("a failed recipient does not stop the others", func(t *testing.T) {
		mailer := &recordingMailer{fail: map[string]error{"ana@example.com": errors.New("mailbox full")}}
		ch := NewEmailChannel(mailer, NewRenderer())

		err := ch.Send(context.Background(), sampleConfirmation(checkout.LocalePT))
		require.Error(t, err)

		assert.Contains(t, err.Error(), "RUN-0001")
		assert.Equal(t, []string{"bia@example.com"}, mailer.sent)
	})

	t.Run("participants without email are skipped", func(t *testing.T) {
		mailer := &recordingMailer{}
		conf := sampleConfirmation(checkout.LocalePT)
		conf.Participants[1].Email = ""

		require.NoError(t, NewEmailChannel(mailer, NewRenderer()).Send(context.Background(), conf))
		assert.Equal(t, []string{"ana@example.com"}, mailer.sent)
	})
}

func TestKafkaChannel_Send(t *testing.T) {
	t.Run("publishes keyed by checkout", func(t *testing.T) {
		w := &recordingWriter{}
		ch := &KafkaChannel{writer: w}
		conf := sampleConfirmation(checkout.LocaleES)

		require.NoError(t, ch.Send(context.Background(), conf))
		require.Len(t, w.msgs, 1)

		msg := w.msgs[0]
		assert.Equal(t, conf.CheckoutID.String(), string(msg.Key))

		var got Payload
		require.NoError(t, json.Unmarshal(msg.Value, &got))
		assert.Equal(t, "es", got.Locale)
		assert.Len(t, got.Participants, 2)
		assert.Equal(t, "30.00", got.Financial.Total)
	})

	t.Run("writer failure is returned", func(t *testing.T) {
		ch := &KafkaChannel{writer: &recordingWriter{err: errors.New("no leader")}}

		err := ch.Send(context.Background(), sampleConfirmation(checkout.LocalePT))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no leader")
	})

	t.Run("close closes the writer", func(t *testing.T) {
		w := &recordingWriter{}
		require.NoError(t, (&KafkaChannel{writer: w}).Close())
		assert.True(t, w.closed)
	})
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, fromAddress: "no-reply@example.com", fromName: "Inscrições"}

	err := m.Send(context.Background(), "ana@example.com", Email{Subject: "Oi", HTML: "<p>oi</p>"})
	require.NoError(t, err)

	require.NotNil(t, client.input)
	assert.Equal(t, "Inscrições <no-reply@example.com>", *client.input.Source)
	assert.Equal(t, []string{"ana@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Oi", *client.input.Message.Subject.Data)
	assert.Nil(t, client.input.Message.Body.Text)

	client.err = errors.New("throttled")
	assert.Error(t, m.Send(context.Background(), "ana@example.com", Email{}))
}

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, ok := NewMailer(mailerConfig("ses"), logger).(*sesMailer)
	assert.True(t, ok)
	_, ok = NewMailer(mailerConfig("noop"), logger).(*noopMailer)
	assert.True(t, ok)
	_, ok = NewMailer(mailerConfig("smtp"), logger).(*noopMailer)
	assert.True(t, ok)
}

func mailerConfig(provider string) config.MailerConfig {
	return config.MailerConfig{
		Provider:    provider,
		FromAddress: "no-reply@example.com",
		SESRegion:   "us-east-1",
	}
}
