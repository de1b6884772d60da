// internal/interfaces/http/handlers/studio.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
)

// OpenStudioRequest starts a design for a product
type OpenStudioRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// ApplyOptionRequest changes one design option
type ApplyOptionRequest struct {
	Kind  studio.OptionKind `json:"kind" binding:"required"`
	Value string            `json:"value"`
}

// StudioHandler handles customization studio endpoints
type StudioHandler struct {
	sessions *session.Service
	renderer *Renderer
	logger   *logrus.Logger
}

// NewStudioHandler creates a new studio handler
func NewStudioHandler(sessions *session.Service, renderer *Renderer, logger *logrus.Logger) *StudioHandler {
	return &StudioHandler{sessions: sessions, renderer: renderer, logger: logger}
}

// Open handles POST /studio
func (h *StudioHandler) Open(c *gin.Context) {
	var req OpenStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	st, err := h.sessions.OpenStudio(c.Request.Context(), middleware.SessionIDFromContext(c), req.ProductID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondDesign(c, st, http.StatusCreated, "Design started")
}

// Get handles GET /studio
func (h *StudioHandler) Get(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondDesign(c, st, http.StatusOK, "Design retrieved successfully")
}

// ApplyOption handles PATCH /studio/options
func (h *StudioHandler) ApplyOption(c *gin.Context) {
	var req ApplyOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	st, err := h.sessions.ApplyStudioOption(c.Request.Context(), middleware.SessionIDFromContext(c), req.Kind, req.Value)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondDesign(c, st, http.StatusOK, "Design updated")
}

// Preview handles GET /studio/preview
func (h *StudioHandler) Preview(c *gin.Context) {
	st, err := h.sessions.Get(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if st.Studio == nil {
		respondError(c, h.logger, session.ErrNoDesign)
		return
	}

	respond(c, http.StatusOK, "Preview rendered successfully", h.sessions.Model().Preview(*st.Studio))
}

// Save handles POST /studio/save. The response is delayed by the simulated
// save time.
func (h *StudioHandler) Save(c *gin.Context) {
	_, saved, err := h.sessions.SaveDesign(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Design saved", saved)
}

// AddToCart handles POST /studio/cart
func (h *StudioHandler) AddToCart(c *gin.Context) {
	st, item, err := h.sessions.AddStudioDesignToCart(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Design added to cart", gin.H{
		"item": item,
		"cart": cartView(st.Cart),
	})
}

func (h *StudioHandler) respondDesign(c *gin.Context, st session.State, status int, message string) {
	if st.Studio == nil || st.SelectedProduct == nil {
		respondError(c, h.logger, session.ErrNoDesign)
		return
	}

	respond(c, status, message, h.renderer.studioView(*st.SelectedProduct, *st.Studio))
}
