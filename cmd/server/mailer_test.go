package main

import (
	"testing"

	"github.com/dheerajjx/portfolio/internal/config"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer(t *testing.T) {
	smtp := func(env string) *config.Config {
		return &config.Config{
			Environment: env,
			SMTPHost:    "smtp.example.com",
			SMTPPort:    465,
			SMTPUser:    "user",
			SMTPPass:    "pass",
			FromEmail:   "noreply@example.com",
		}
	}

	tests := []struct {
		name    string
		cfg     *config.Config
		want    any
		wantErr error
	}{
		{name: "smtp in production", cfg: smtp("production"), want: &mail.SMTPSender{}},
		{name: "smtp in development", cfg: smtp("development"), want: &mail.SMTPSender{}},
		{name: "log only in development", cfg: &config.Config{Environment: "development"}, want: &mail.LogSender{}},
		{name: "no relay in production", cfg: &config.Config{Environment: "production"}, wantErr: errSMTPRequired},
		{name: "partial relay in production", cfg: &config.Config{Environment: "production", SMTPHost: "smtp.example.com"}, wantErr: errSMTPRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer, err := newMailer(tt.cfg, logging.Discard())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, mailer)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, mailer)
		})
	}
}
