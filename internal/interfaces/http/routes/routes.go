// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/handlers"
)

// Handlers groups every handler the API routes to
type Handlers struct {
	Catalog   *handlers.CatalogHandler
	Session   *handlers.SessionHandler
	Studio    *handlers.StudioHandler
	Cart      *handlers.CartHandler
	Checkout  *handlers.CheckoutHandler
	Account   *handlers.AccountHandler
	Corporate *handlers.CorporateHandler
}

// SetupCatalogRoutes sets up catalog routes. They do not need a session.
func SetupCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group("/catalog")
	{
		catalog.GET("/products", h.ListProducts)
		catalog.GET("/products/:id", h.GetProduct)
		catalog.GET("/options", h.GetOptions)
	}
}

// SetupSessionRoutes sets up session and page view routes
func SetupSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	session := rg.Group("/session")
	{
		session.GET("", h.GetSession)
		session.GET("/view", h.GetView)
		session.POST("/navigate", h.Navigate)
	}
}

// SetupStudioRoutes sets up customization studio routes
func SetupStudioRoutes(rg *gin.RouterGroup, h *handlers.StudioHandler) {
	studio := rg.Group("/studio")
	{
		studio.POST("", h.Open)
		studio.GET("", h.Get)
		studio.PATCH("/options", h.ApplyOption)
		studio.GET("/preview", h.Preview)
		studio.POST("/save", h.Save)
		studio.POST("/cart", h.AddToCart)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.DELETE("/items/:id", h.RemoveItem)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	checkout := rg.Group("/checkout")
	{
		checkout.POST("", h.Begin)
		checkout.GET("/shipping-methods", h.GetShippingMethods)
		checkout.POST("/address", h.SubmitAddress)
		checkout.POST("/shipping", h.SelectShipping)
		checkout.POST("/payment", h.SubmitPayment)
		checkout.POST("/place-order", h.PlaceOrder)
	}
}

// SetupAccountRoutes sets up account routes
func SetupAccountRoutes(rg *gin.RouterGroup, h *handlers.AccountHandler) {
	account := rg.Group("/account")
	{
		account.GET("/orders", h.GetOrders)
		account.GET("/designs", h.GetDesigns)
	}
}

// SetupCorporateRoutes sets up corporate inquiry routes
func SetupCorporateRoutes(rg *gin.RouterGroup, h *handlers.CorporateHandler) {
	corporate := rg.Group("/corporate")
	{
		corporate.POST("/inquiries", h.SubmitInquiry)
	}
}

// SetupRoutes registers every API route. Routes registered on sessioned
// run behind the session middleware.
func SetupRoutes(public, sessioned *gin.RouterGroup, h Handlers) {
	SetupCatalogRoutes(public, h.Catalog)
	SetupCorporateRoutes(public, h.Corporate)

	SetupSessionRoutes(sessioned, h.Session)
	SetupStudioRoutes(sessioned, h.Studio)
	SetupCartRoutes(sessioned, h.Cart)
	SetupCheckoutRoutes(sessioned, h.Checkout)
	SetupAccountRoutes(sessioned, h.Account)
}
