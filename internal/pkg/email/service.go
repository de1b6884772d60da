// internal/pkg/email/service.go
package email

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/config"
)

// Sender delivers an email
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// NewSender returns an SMTP sender when an SMTP host is configured and a
// log-only sender otherwise
func NewSender(cfg *config.Config, logger *logrus.Logger) Sender {
	if cfg.Email.SMTPHost == "" {
		return NewLogSender(logger)
	}
	return NewSMTPSender(cfg.Email)
}

// LogSender writes emails to the application log instead of sending them
type LogSender struct {
	logger *logrus.Logger
}

// NewLogSender creates a log-only sender
func NewLogSender(logger *logrus.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, email *Email) error {
	fields := logrus.Fields{
		"to":      strings.Join(email.To, ", "),
		"subject": email.Subject,
		"type":    email.Type,
	}
	for k, v := range email.Data {
		fields[k] = v
	}

	s.logger.WithFields(fields).Info("Email not sent, SMTP is not configured")
	return nil
}
