package main

import (
	"errors"

	"github.com/dheerajjx/portfolio/internal/config"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/mail"
	"github.com/dheerajjx/portfolio/internal/service"
)

var errSMTPRequired = errors.New("SMTP_HOST, SMTP_USER and SMTP_PASS are required in production")

// newMailer picks the SMTP relay when configured. Outside production it falls
// back to logging messages; in production a missing relay is an error.
func newMailer(cfg *config.Config, logger logging.Logger) (service.Mailer, error) {
	if cfg.SMTPConfigured() {
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.SMTPUser,
			Password:  cfg.SMTPPass,
			FromName:  cfg.FromName,
			FromEmail: cfg.FromEmail,
		}), nil
	}
	if cfg.IsProduction() {
		return nil, errSMTPRequired
	}
	return mail.NewLogSender(logger), nil
}
