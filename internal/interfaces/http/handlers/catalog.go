// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/pkg/money"
)

// CatalogHandler handles catalog endpoints
type CatalogHandler struct {
	catalog *catalog.Store
	logger  *logrus.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(c *catalog.Store, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: c, logger: logger}
}

// productQuery is the listing query string. max_price is whole dollars,
// the unit of the shop's price slider and of the CLI --max-price flag.
type productQuery struct {
	catalog.Filter
	MaxPrice int64 `form:"max_price" binding:"omitempty,min=0"`
}

// ListProducts handles GET /catalog/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var query productQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	filter := query.Filter
	filter.MaxPrice = money.FromDollars(query.MaxPrice)

	products := h.catalog.Filter(filter)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products":   cards(products),
			"total":      len(products),
			"empty":      len(products) == 0,
			"categories": h.catalog.Categories(),
			"filter":     filter,
		},
	})
}

// GetProduct handles GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalog.Product(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "Product retrieved successfully", ProductView{
		Product:        p,
		FormattedPrice: money.Format(p.Price),
	})
}

// GetOptions handles GET /catalog/options
func (h *CatalogHandler) GetOptions(c *gin.Context) {
	respond(c, http.StatusOK, "Options retrieved successfully", h.catalog.Options())
}
