// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
)

// AddToCartRequest adds a catalog product without customization
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *session.Service
	logger   *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *session.Service, logger *logrus.Logger) *CartHandler {
	return &CartHandler{sessions: sessions, logger: logger}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Cart retrieved successfully", cartView(st.Cart))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	st, item, err := h.sessions.AddToCart(c.Request.Context(), middleware.SessionIDFromContext(c), req.ProductID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Item added to cart successfully", gin.H{
		"item": item,
		"cart": cartView(st.Cart),
	})
}

// RemoveItem handles DELETE /cart/items/:id. Unknown ids are not an error.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	st, err := h.sessions.RemoveFromCart(c.Request.Context(), middleware.SessionIDFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Item removed from cart successfully", cartView(st.Cart))
}
