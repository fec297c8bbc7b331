package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/taskmgmt/notify-api/internal/config"
)

// Sender delivers a rendered reminder message.
type Sender interface {
	// Send delivers the message, blocking until the transport accepts or
	// rejects it. A returned error is terminal for this attempt; the
	// pipeline never retries.
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers messages over an authenticated, TLS-required SMTP
// submission connection.
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender creates a Sender backed by the configured SMTP relay.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Ensure SMTPSender implements the Sender interface
var _ Sender = (*SMTPSender)(nil)

// Send implements Sender.Send. A fresh connection is dialed per message;
// invocation volumes are small enough that connection reuse is not worth
// the session bookkeeping.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", s.cfg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
