// internal/pkg/email/types.go
package email

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeCorporateInquiry EmailType = "corporate_inquiry"
	EmailTypeTest             EmailType = "test"
)

// Email represents an email message
type Email struct {
	To          []string               `json:"to"`
	ReplyTo     string                 `json:"reply_to,omitempty"`
	Subject     string                 `json:"subject"`
	HTMLContent string                 `json:"html_content"`
	Type        EmailType              `json:"type"`
	Data        map[string]interface{} `json:"data,omitempty"`
}
