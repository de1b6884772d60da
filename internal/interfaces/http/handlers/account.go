// internal/interfaces/http/handlers/account.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
)

// AccountHandler handles the order history and saved designs tabs
type AccountHandler struct {
	sessions *session.Service
	logger   *logrus.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(sessions *session.Service, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{sessions: sessions, logger: logger}
}

// GetOrders handles GET /account/orders
func (h *AccountHandler) GetOrders(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Orders retrieved successfully", gin.H{
		"orders": st.Orders,
		"empty":  len(st.Orders) == 0,
	})
}

// GetDesigns handles GET /account/designs
func (h *AccountHandler) GetDesigns(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Saved designs retrieved successfully", gin.H{
		"designs": st.SavedDesigns,
		"empty":   len(st.SavedDesigns) == 0,
	})
}
