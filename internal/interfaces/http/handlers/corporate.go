// internal/interfaces/http/handlers/corporate.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/inquiry"
)

// CorporateHandler handles corporate inquiry endpoints
type CorporateHandler struct {
	inquiries *inquiry.Service
	logger    *logrus.Logger
}

// NewCorporateHandler creates a new corporate handler
func NewCorporateHandler(inquiries *inquiry.Service, logger *logrus.Logger) *CorporateHandler {
	return &CorporateHandler{inquiries: inquiries, logger: logger}
}

// SubmitInquiry handles POST /corporate/inquiries
func (h *CorporateHandler) SubmitInquiry(c *gin.Context) {
	var req inquiry.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	inq, err := h.inquiries.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Inquiry received", inq)
}
