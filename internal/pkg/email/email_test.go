package email

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-atelier/storefront/internal/config"
)

func TestNewSenderSelection(t *testing.T) {
	logger, _ := test.NewNullLogger()

	cfg := &config.Config{}
	assert.IsType(t, &LogSender{}, NewSender(cfg, logger))

	cfg.Email.SMTPHost = "smtp.example.com"
	assert.IsType(t, &SMTPSender{}, NewSender(cfg, logger))
}

func TestLogSenderLogsEmail(t *testing.T) {
	logger, hook := test.NewNullLogger()
	sender := NewLogSender(logger)

	err := sender.Send(context.Background(), &Email{
		To:      []string{"corporate@zyra.luxury"},
		Subject: "New corporate inquiry",
		Type:    EmailTypeCorporateInquiry,
		Data:    map[string]interface{}{"reference": "CORP-0042"},
	})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "CORP-0042", entry.Data["reference"])
	assert.Equal(t, "corporate@zyra.luxury", entry.Data["to"])
}

func TestBuildMessage(t *testing.T) {
	sender := NewSMTPSender(config.EmailConfig{FromEmail: "atelier@zyra.luxury", FromName: "Zyra Atelier"})

	msg := string(sender.buildMessage(&Email{
		To:          []string{"a@example.com", "b@example.com"},
		ReplyTo:     "buyer@acme.test",
		Subject:     "Hello",
		HTMLContent: "<p>Body</p>",
	}))

	head, body, ok := strings.Cut(msg, "\r\n\r\n")
	require.True(t, ok)
	assert.Equal(t, "<p>Body</p>", body)
	assert.Contains(t, head, "From: Zyra Atelier <atelier@zyra.luxury>\r\n")
	assert.Contains(t, head, "\r\nTo: a@example.com, b@example.com")
	assert.Contains(t, head, "Reply-To: buyer@acme.test\r\n")
	assert.True(t, strings.HasPrefix(head, "Content-Type:"), "headers are sorted")
}

func TestSMTPSenderRequiresRecipients(t *testing.T) {
	sender := NewSMTPSender(config.EmailConfig{SMTPHost: "localhost", SMTPPort: 2525})
	err := sender.Send(context.Background(), &Email{Subject: "x"})
	assert.Error(t, err)
}

func TestBuildMessageKeepsHeadersOnOneLine(t *testing.T) {
	sender := NewSMTPSender(config.EmailConfig{FromEmail: "atelier@zyra.luxury"})

	msg := string(sender.buildMessage(&Email{
		To:          []string{"corporate@zyra.luxury"},
		ReplyTo:     "buyer@acme.test\nCc: other@evil.test",
		Subject:     "Corporate inquiry from Acme\r\nBcc: victim@evil.test",
		HTMLContent: "<p>Body</p>",
	}))

	head, _, ok := strings.Cut(msg, "\r\n\r\n")
	require.True(t, ok)
	assert.NotContains(t, head, "\r\nBcc:")
	assert.NotContains(t, head, "\nCc:")
	assert.Contains(t, head, "Subject: Corporate inquiry from Acme Bcc: victim@evil.test\r\n")
	assert.Len(t, strings.Split(head, "\r\n"), 6)
}
