package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/arabyads/influencer-service/internal/config"
)

// SMTPMailer delivers mail synchronously. Transport failures are returned to
// the caller; the reconciliation job must not swallow them.
type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *SMTPMailer) Send(subject, body, from string, to []string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
