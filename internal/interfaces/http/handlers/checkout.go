// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/checkout"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
)

// ShippingRequest selects a shipping method
type ShippingRequest struct {
	ShippingMethodID string `json:"shipping_method_id" binding:"required"`
}

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	sessions *session.Service
	logger   *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions *session.Service, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions, logger: logger}
}

// GetShippingMethods handles GET /checkout/shipping-methods
func (h *CheckoutHandler) GetShippingMethods(c *gin.Context) {
	respond(c, http.StatusOK, "Shipping methods retrieved successfully", checkout.ShippingMethods)
}

// Begin handles POST /checkout
func (h *CheckoutHandler) Begin(c *gin.Context) {
	st, err := h.sessions.BeginCheckout(c.Request.Context(), middleware.SessionIDFromContext(c))
	h.respondProgress(c, st, err, "Checkout started")
}

// SubmitAddress handles POST /checkout/address
func (h *CheckoutHandler) SubmitAddress(c *gin.Context) {
	var req checkout.Address
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	st, err := h.sessions.SubmitAddress(c.Request.Context(), middleware.SessionIDFromContext(c), req)
	h.respondProgress(c, st, err, "Shipping address saved")
}

// SelectShipping handles POST /checkout/shipping
func (h *CheckoutHandler) SelectShipping(c *gin.Context) {
	var req ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	st, err := h.sessions.SelectShipping(c.Request.Context(), middleware.SessionIDFromContext(c), req.ShippingMethodID)
	h.respondProgress(c, st, err, "Shipping method selected")
}

// SubmitPayment handles POST /checkout/payment
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var req checkout.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	st, err := h.sessions.SubmitPayment(c.Request.Context(), middleware.SessionIDFromContext(c), req)
	h.respondProgress(c, st, err, "Payment details accepted")
}

// PlaceOrder handles POST /checkout/place-order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	_, order, err := h.sessions.PlaceOrder(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Order placed successfully", order)
}

func (h *CheckoutHandler) respondProgress(c *gin.Context, st session.State, err error, message string) {
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, message, checkoutView(st))
}
