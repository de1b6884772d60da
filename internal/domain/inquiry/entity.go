// internal/domain/inquiry/entity.go
package inquiry

import "time"

// QuantityTier is the estimated order volume band
type QuantityTier string

const (
	Tier25To100  QuantityTier = "25-100"
	Tier101To500 QuantityTier = "101-500"
	Tier500Plus  QuantityTier = "500+"
)

// Tiers lists the offered bands; the first is the form default
var Tiers = []QuantityTier{Tier25To100, Tier101To500, Tier500Plus}

// Label is the text shown in the quantity dropdown
func (t QuantityTier) Label() string {
	switch t {
	case Tier25To100:
		return "25 - 100 Pieces"
	case Tier101To500:
		return "101 - 500 Pieces"
	case Tier500Plus:
		return "500+ Pieces (Enterprise)"
	}
	return string(t)
}

// Request represents a corporate inquiry form submission
type Request struct {
	CompanyName  string       `json:"company_name" binding:"required,max=200"`
	Industry     string       `json:"industry" binding:"required,max=100"`
	ContactName  string       `json:"contact_name" binding:"required,max=200"`
	Email        string       `json:"email" binding:"required,email"`
	QuantityTier QuantityTier `json:"quantity_tier" binding:"omitempty,oneof=25-100 101-500 500+"`
	Message      string       `json:"message" binding:"max=5000"`
}

// Inquiry is an accepted request with its reference number
type Inquiry struct {
	Reference   string       `json:"reference"`
	CompanyName string       `json:"company_name"`
	Industry    string       `json:"industry"`
	ContactName string       `json:"contact_name"`
	Email       string       `json:"email"`
	Tier        QuantityTier `json:"quantity_tier"`
	Message     string       `json:"message,omitempty"`
	SubmittedAt time.Time    `json:"submitted_at"`
}
