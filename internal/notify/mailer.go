package notify

import (
	"context"
	"fmt"

	"facility-booking/pkg/utils"

	"github.com/wneessen/go-mail"
)

// Mailer abstracts the delivery transport. The dispatcher only ever
// needs fire-one-message semantics.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

type smtpMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds the go-mail client. An empty host means SMTP is
// not configured for this deployment; it returns a nil Mailer so the
// dispatcher disables itself instead of the boot failing.
func NewSMTPMailer(config utils.EmailConfig) (Mailer, error) {
	if config.Host == "" {
		return nil, nil
	}

	var opts []mail.Option
	if config.Port > 0 {
		opts = append(opts, mail.WithPort(config.Port))
	}
	if config.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.User),
			mail.WithPassword(config.Password),
		)
	}

	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &smtpMailer{
		client: client,
		from:   config.From,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to []string, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set mail from %s: %w", m.from, err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("set mail recipients: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
