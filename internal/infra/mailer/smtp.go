package mailer

import (
	"context"
	"log/slog"

	"ride-together/internal/pkg/config"

	"github.com/cockroachdb/errors"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends plain-text mail through gomail. With no host configured
// it only logs what it would have sent.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	m := &SMTPMailer{from: cfg.From}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return m
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == "" {
		return errors.New("mail recipient is empty")
	}

	if m.dialer == nil {
		slog.Info("mail delivery disabled, logging message",
			"to", to,
			"subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", to)
	}
	return nil
}
