package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type fakeSender struct {
	messages []*gomail.Msg
	err      error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	f.messages = append(f.messages, messages...)

	return f.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func render(t *testing.T, msg *gomail.Msg) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)

	return buf.String()
}

func TestNewMailer_Providers(t *testing.T) {
	t.Run("log only when not configured", func(t *testing.T) {
		mailer, err := NewMailer(MailerParams{Config: &config.Config{}, Logger: newDiscardLogger()})
		require.NoError(t, err)
		assert.IsType(t, &logMailer{}, mailer)
	})

	t.Run("smtp requires host", func(t *testing.T) {
		_, err := NewMailer(MailerParams{
			Config: &config.Config{Mail: &config.MailConfig{Provider: ProviderSMTP, From: "shop@example.com"}},
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	})

	t.Run("smtp", func(t *testing.T) {
		mailer, err := NewMailer(MailerParams{
			Config: &config.Config{Mail: &config.MailConfig{
				Provider: ProviderSMTP,
				Host:     "smtp.example.com",
				Port:     587,
				Username: "shop",
				Password: "secret",
				From:     "Shop <shop@example.com>",
			}},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &smtpMailer{}, mailer)
	})
}

func TestSMTPMailer_SendOrderConfirmation(t *testing.T) {
	client := &fakeSender{}
	mailer := newSMTPMailer(client, "shop@example.com", newDiscardLogger())

	err := mailer.SendOrderConfirmation(context.Background(), &service.OrderConfirmationMail{
		To:         "jane@example.com",
		Name:       "Jane",
		OrderID:    "order-1",
		TotalCents: 5000,
		Lines:      []service.OrderConfirmationLine{{ProductID: 1, Quantity: 2, PriceCents: 2500}},
	})
	require.NoError(t, err)
	require.Len(t, client.messages, 1)

	msg := client.messages[0]
	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.com"}, recipients)
	assert.Equal(t, []string{subjectOrderConfirmation}, msg.GetGenHeader(gomail.HeaderSubject))

	body := render(t, msg)
	assert.Contains(t, body, "Your order ID is order-1.")
	assert.Contains(t, body, "Total: $50.00")
}

func TestSMTPMailer_SendPasswordReset(t *testing.T) {
	client := &fakeSender{}
	mailer := newSMTPMailer(client, "shop@example.com", newDiscardLogger())

	err := mailer.SendPasswordReset(context.Background(), &service.PasswordResetMail{
		To:       "jane@example.com",
		Name:     "Jane",
		ResetURL: "http://shop/reset-password?token=abc",
	})
	require.NoError(t, err)
	require.Len(t, client.messages, 1)

	assert.Equal(t, []string{subjectPasswordReset}, client.messages[0].GetGenHeader(gomail.HeaderSubject))
	assert.Contains(t, render(t, client.messages[0]), "token")
}

func TestSMTPMailer_Errors(t *testing.T) {
	t.Run("delivery failure", func(t *testing.T) {
		mailer := newSMTPMailer(&fakeSender{err: errors.New("connection refused")}, "shop@example.com", newDiscardLogger())

		err := mailer.SendPasswordReset(context.Background(), &service.PasswordResetMail{To: "jane@example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("invalid recipient", func(t *testing.T) {
		client := &fakeSender{}
		mailer := newSMTPMailer(client, "shop@example.com", newDiscardLogger())

		err := mailer.SendPasswordReset(context.Background(), &service.PasswordResetMail{To: "not an address"})
		require.Error(t, err)
		assert.Empty(t, client.messages)
	})
}

func TestLogMailer(t *testing.T) {
	mailer := &logMailer{logger: newDiscardLogger()}

	assert.NoError(t, mailer.SendPasswordReset(context.Background(), &service.PasswordResetMail{To: "a@b.c"}))
	assert.NoError(t, mailer.SendOrderConfirmation(context.Background(), &service.OrderConfirmationMail{To: "a@b.c", TotalCents: 105}))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.05", formatCents(5))
	assert.Equal(t, "50.00", formatCents(5000))
	assert.Equal(t, "123.45", formatCents(12345))
}
