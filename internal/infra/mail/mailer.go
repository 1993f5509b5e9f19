// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

// ProviderSMTP delivers through the configured SMTP relay. Any other provider only logs.
const ProviderSMTP = "smtp"

const (
	subjectPasswordReset     = "Reset your password"
	subjectOrderConfirmation = "Your Order Confirmation"
)

// sender is the part of the go-mail client used for delivery.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpMailer struct {
	client sender
	from   string
	logger *slog.Logger
}

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer returns the SMTP mailer, or a log-only mailer when SMTP is not configured.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	logger := params.Logger.With(slog.String("component", "mail"))

	if cfg == nil || cfg.Provider != ProviderSMTP {
		logger.Info("SMTP not configured, emails will only be logged")

		return &logMailer{logger: logger}, nil
	}
	if cfg.Host == "" || cfg.From == "" {
		return nil, errors.New("mail host and from address are required for smtp provider")
	}

	opts := []gomail.Option{
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	logger.Info("SMTP mailer initialized", slog.String("host", cfg.Host), slog.Int("port", cfg.Port))

	return newSMTPMailer(client, cfg.From, logger), nil
}

func newSMTPMailer(client sender, from string, logger *slog.Logger) *smtpMailer {
	return &smtpMailer{client: client, from: from, logger: logger}
}

// SendPasswordReset sends the reset link.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, mail *service.PasswordResetMail) error {
	msg, err := m.newMessage(mail.To, subjectPasswordReset)
	if err != nil {
		return err
	}

	data := resetData{Name: mail.Name, ResetURL: mail.ResetURL}
	if err := msg.SetBodyTextTemplate(resetText, data); err != nil {
		return errors.Wrap(err, "failed to render password reset text body")
	}
	if err := msg.AddAlternativeHTMLTemplate(resetHTML, data); err != nil {
		return errors.Wrap(err, "failed to render password reset html body")
	}

	return m.send(ctx, msg, "password_reset")
}

// SendOrderConfirmation sends the order receipt.
func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, mail *service.OrderConfirmationMail) error {
	msg, err := m.newMessage(mail.To, subjectOrderConfirmation)
	if err != nil {
		return err
	}

	data := newOrderData(mail)
	if err := msg.SetBodyTextTemplate(orderText, data); err != nil {
		return errors.Wrap(err, "failed to render order confirmation text body")
	}
	if err := msg.AddAlternativeHTMLTemplate(orderHTML, data); err != nil {
		return errors.Wrap(err, "failed to render order confirmation html body")
	}

	return m.send(ctx, msg, "order_confirmation")
}

func (m *smtpMailer) newMessage(to, subject string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid from address")
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient address %q", to)
	}
	msg.Subject(subject)

	return msg, nil
}

func (m *smtpMailer) send(ctx context.Context, msg *gomail.Msg, kind string) error {
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.WarnContext(ctx, "Email delivery failed",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "failed to send email")
	}

	m.logger.InfoContext(ctx, "Email sent", slog.String("kind", kind))

	return nil
}

// logMailer writes emails to the log instead of delivering them.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) SendPasswordReset(ctx context.Context, mail *service.PasswordResetMail) error {
	m.logger.InfoContext(ctx, "Password reset email",
		slog.String("to", mail.To),
		slog.String("reset_url", mail.ResetURL),
	)

	return nil
}

func (m *logMailer) SendOrderConfirmation(ctx context.Context, mail *service.OrderConfirmationMail) error {
	m.logger.InfoContext(ctx, "Order confirmation email",
		slog.String("to", mail.To),
		slog.String("order_id", mail.OrderID),
		slog.String("total", formatCents(mail.TotalCents)),
	)

	return nil
}

func newOrderData(mail *service.OrderConfirmationMail) orderData {
	lines := make([]orderLine, 0, len(mail.Lines))
	for _, line := range mail.Lines {
		lines = append(lines, orderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     formatCents(line.PriceCents),
		})
	}

	return orderData{
		Name:    mail.Name,
		OrderID: mail.OrderID,
		Total:   formatCents(mail.TotalCents),
		Lines:   lines,
	}
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
