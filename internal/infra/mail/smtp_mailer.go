// Package mail contains the SMTP implementation of the email primitive and
// the retrying dispatcher layered on top of it.
package mail

import (
	"context"

	"herdwatch/config"
	"herdwatch/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpMailer implements the service.Mailer interface. One call is one
// delivery attempt; retry policy lives in the dispatcher.
type smtpMailer struct {
	cfg *config.SMTPConfig
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is missing")
	}

	return &smtpMailer{
		cfg: cfg.SMTP,
	}, nil
}

// SendEmail delivers a single HTML email to one recipient.
func (m *smtpMailer) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	// A fresh client per send keeps the mailer free of shared mutable state,
	// so concurrent farm cycles never contend on one connection.
	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
