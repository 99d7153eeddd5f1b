// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/dheerajjx/portfolio/internal/logging"
	gomail "github.com/wneessen/go-mail"
)

// Message is a two-part (text + HTML) email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPSender sends mail through an authenticated SMTP relay. Port 465 uses
// implicit TLS; any other port upgrades with STARTTLS when offered.
type SMTPSender struct {
	cfg     SMTPConfig
	timeout time.Duration
	now     func() time.Time
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, timeout: 30 * time.Second, now: time.Now}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := compose(s.cfg.FromName, s.cfg.FromEmail, msg, s.now())
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("configure smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) clientOptions() []gomail.Option {
	opts := []gomail.Option{gomail.WithTimeout(s.timeout)}
	if s.cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	// The port goes last so no TLS option can override it.
	return append(opts, gomail.WithPort(s.cfg.Port))
}

// compose builds a multipart/alternative message; empty parts are left out.
func compose(fromName, fromEmail string, msg Message, date time.Time) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(fromName, fromEmail); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", fromEmail, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetDateWithValue(date)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}
	return m, nil
}

// LogSender writes messages to the log instead of sending them. It is only
// for development; the server refuses to start with it in production.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "mail")}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.Warn(ctx, "SMTP not configured, email not sent", "to", msg.To, "subject", msg.Subject, "text", msg.Text)
	return nil
}
