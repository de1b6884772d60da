// internal/domain/inquiry/service.go
package inquiry

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/pkg/email"
)

var notificationTemplate = template.Must(template.New("inquiry").Parse(`<h2>New corporate inquiry {{.Reference}}</h2>
<table>
<tr><td>Company</td><td>{{.CompanyName}}</td></tr>
<tr><td>Industry</td><td>{{.Industry}}</td></tr>
<tr><td>Contact</td><td>{{.ContactName}} &lt;{{.Email}}&gt;</td></tr>
<tr><td>Quantity</td><td>{{.Tier.Label}}</td></tr>
</table>
{{if .Message}}<p>{{.Message}}</p>{{end}}
`))

// Service accepts corporate inquiries and notifies the sales team
type Service struct {
	sender     email.Sender
	recipients []string
	validate   *validator.Validate
	logger     *logrus.Logger
	now        func() time.Time
}

// NewService creates a new inquiry service. Requests are validated with the
// same binding tags gin uses for the HTTP form.
func NewService(sender email.Sender, recipients []string, logger *logrus.Logger) *Service {
	v := validator.New()
	v.SetTagName("binding")

	return &Service{
		sender:     sender,
		recipients: recipients,
		validate:   v,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates the request, assigns a reference and sends the
// notification. The inquiry is still accepted when the notification fails.
func (s *Service) Submit(ctx context.Context, req Request) (Inquiry, error) {
	req = normalize(req)
	if err := s.validate.Struct(req); err != nil {
		return Inquiry{}, fmt.Errorf("invalid inquiry: %w", err)
	}

	inq := Inquiry{
		Reference:   newReference(),
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		ContactName: req.ContactName,
		Email:       req.Email,
		Tier:        req.QuantityTier,
		Message:     req.Message,
		SubmittedAt: s.now(),
	}

	entry := s.logger.WithFields(logrus.Fields{
		"reference": inq.Reference,
		"company":   inq.CompanyName,
		"tier":      inq.Tier,
	})

	if err := s.notify(ctx, inq); err != nil {
		entry.WithError(err).Error("Failed to send inquiry notification")
	} else {
		entry.Info("Corporate inquiry received")
	}

	return inq, nil
}

func (s *Service) notify(ctx context.Context, inq Inquiry) error {
	var body bytes.Buffer
	if err := notificationTemplate.Execute(&body, inq); err != nil {
		return fmt.Errorf("failed to render inquiry email: %w", err)
	}

	return s.sender.Send(ctx, &email.Email{
		To:          s.recipients,
		ReplyTo:     inq.Email,
		Subject:     fmt.Sprintf("Corporate inquiry %s from %s", inq.Reference, inq.CompanyName),
		HTMLContent: body.String(),
		Type:        email.EmailTypeCorporateInquiry,
		Data: map[string]interface{}{
			"reference": inq.Reference,
			"company":   inq.CompanyName,
		},
	})
}

// singleLine collapses line breaks in fields that end up in mail headers
var singleLine = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func normalize(req Request) Request {
	req.CompanyName = strings.TrimSpace(singleLine.Replace(req.CompanyName))
	req.Industry = strings.TrimSpace(singleLine.Replace(req.Industry))
	req.ContactName = strings.TrimSpace(singleLine.Replace(req.ContactName))
	req.Email = strings.ToLower(strings.TrimSpace(singleLine.Replace(req.Email)))
	req.Message = strings.TrimSpace(req.Message)
	if req.QuantityTier == "" {
		req.QuantityTier = Tiers[0]
	}
	return req
}

// newReference formats references like CORP-0427
func newReference() string {
	return fmt.Sprintf("CORP-%04d", rand.IntN(10000))
}
