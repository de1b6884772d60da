// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
)

// NavigateRequest represents a page change
type NavigateRequest struct {
	Page      string `json:"page" binding:"required"`
	ProductID string `json:"product_id"`
}

// SessionHandler handles session and page view endpoints
type SessionHandler struct {
	sessions *session.Service
	renderer *Renderer
	logger   *logrus.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Service, renderer *Renderer, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, renderer: renderer, logger: logger}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Session retrieved successfully", st)
}

// GetView handles GET /session/view
func (h *SessionHandler) GetView(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.renderView(c, st, "View rendered successfully")
}

// Navigate handles POST /session/navigate
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := session.ParsePage(req.Page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	st, err := h.sessions.Navigate(c.Request.Context(), middleware.SessionIDFromContext(c), page, req.ProductID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.renderView(c, st, "Navigated successfully")
}

func (h *SessionHandler) renderView(c *gin.Context, st session.State, message string) {
	view, err := h.renderer.Render(st)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, message, view)
}
