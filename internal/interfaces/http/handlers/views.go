// internal/interfaces/http/handlers/views.go
package handlers

import (
	"fmt"

	"github.com/zyra-atelier/storefront/internal/domain/cart"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/checkout"
	"github.com/zyra-atelier/storefront/internal/domain/inquiry"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
	"github.com/zyra-atelier/storefront/internal/pkg/money"
)

const featuredCount = 4

// View is the rendered model of the page a session is on
type View struct {
	Page      session.Page `json:"page"`
	CartCount int          `json:"cart_count"`
	Content   interface{}  `json:"content"`
}

// ProductCard is a product as shown in listings
type ProductCard struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          int64    `json:"price"`
	FormattedPrice string   `json:"formatted_price"`
	Category       string   `json:"category"`
	Collection     string   `json:"collection"`
	Image          string   `json:"image"`
	HoverImage     string   `json:"hover_image"`
	Colors         []string `json:"colors"`
	Customizable   bool     `json:"customizable"`
}

type HomeView struct {
	Featured []ProductCard `json:"featured"`
}

type ShopView struct {
	Categories []string      `json:"categories"`
	Products   []ProductCard `json:"products"`
}

type ProductView struct {
	Product        catalog.Product `json:"product"`
	FormattedPrice string          `json:"formatted_price"`
}

type StudioView struct {
	Product        ProductCard     `json:"product"`
	Design         studio.State    `json:"design"`
	FormattedPrice string          `json:"formatted_price"`
	Preview        studio.Preview  `json:"preview"`
	Options        catalog.Options `json:"options"`
}

// CartLine is a cart item with display prices
type CartLine struct {
	cart.CartItem
	EffectivePrice     int64  `json:"unit_price"`
	FormattedLineTotal string `json:"formatted_line_total"`
}

type CartView struct {
	Empty             bool            `json:"empty"`
	Items             []CartLine      `json:"items"`
	Totals            cart.CartTotals `json:"totals"`
	FormattedSubtotal string          `json:"formatted_subtotal"`
}

type CheckoutView struct {
	Empty           bool                      `json:"empty"`
	Step            checkout.Step             `json:"step"`
	Progress        checkout.Progress         `json:"progress"`
	ShippingMethods []checkout.ShippingMethod `json:"shipping_methods"`
	Items           []CartLine                `json:"items"`
	Pricing         checkout.Pricing          `json:"pricing"`
	FormattedTotal  string                    `json:"formatted_total"`
}

type AccountView struct {
	Orders       []checkout.Order      `json:"orders"`
	SavedDesigns []session.SavedDesign `json:"saved_designs"`
}

type SuccessView struct {
	Order *checkout.Order `json:"order,omitempty"`
}

// TierOption is one choice of the corporate quantity dropdown
type TierOption struct {
	Value inquiry.QuantityTier `json:"value"`
	Label string               `json:"label"`
}

type CorporateView struct {
	QuantityTiers []TierOption `json:"quantity_tiers"`
}

type GiftView struct {
	Products []ProductCard `json:"products"`
}

// Renderer builds views from session state
type Renderer struct {
	catalog *catalog.Store
	model   *studio.Model
}

// NewRenderer creates a view renderer
func NewRenderer(c *catalog.Store, m *studio.Model) *Renderer {
	return &Renderer{catalog: c, model: m}
}

// Render builds the view for the page st is on. Pages that need a selected
// product fall back to home without one.
func (r *Renderer) Render(st session.State) (View, error) {
	page := st.RenderedPage()
	view := View{Page: page, CartCount: st.Cart.Totals().TotalQuantity}

	switch page {
	case session.PageHome:
		products := r.catalog.Products()
		view.Content = HomeView{Featured: cards(products[:min(featuredCount, len(products))])}
	case session.PageShop:
		view.Content = ShopView{Categories: r.catalog.Categories(), Products: cards(r.catalog.Products())}
	case session.PagePDP:
		p := *st.SelectedProduct
		view.Content = ProductView{Product: p, FormattedPrice: money.Format(p.Price)}
	case session.PageStudio:
		view.Content = r.studioView(*st.SelectedProduct, *st.Studio)
	case session.PageCart:
		view.Content = cartView(st.Cart)
	case session.PageCheckout:
		view.Content = checkoutView(st)
	case session.PageAccount:
		view.Content = AccountView{Orders: st.Orders, SavedDesigns: st.SavedDesigns}
	case session.PageSuccess:
		var sv SuccessView
		if order, ok := st.LastOrder(); ok {
			sv.Order = &order
		}
		view.Content = sv
	case session.PageCorporate:
		view.Content = corporateView()
	case session.PageGift:
		view.Content = GiftView{Products: cards(r.catalog.Products(), customizableOnly)}
	default:
		return View{}, fmt.Errorf("no view for page %q", page)
	}

	return view, nil
}

func (r *Renderer) studioView(p catalog.Product, design studio.State) StudioView {
	return StudioView{
		Product:        card(p),
		Design:         design,
		FormattedPrice: money.Format(design.Price),
		Preview:        r.model.Preview(design),
		Options:        r.model.Options(),
	}
}

func cartView(c cart.Cart) CartView {
	return CartView{
		Empty:             c.IsEmpty(),
		Items:             cartLines(c),
		Totals:            c.Totals(),
		FormattedSubtotal: money.Format(c.Subtotal()),
	}
}

func checkoutView(st session.State) CheckoutView {
	pricing := st.Checkout.Price(st.Cart)
	return CheckoutView{
		Empty:           st.Cart.IsEmpty(),
		Step:            st.Checkout.Step,
		Progress:        st.Checkout,
		ShippingMethods: checkout.ShippingMethods,
		Items:           cartLines(st.Cart),
		Pricing:         pricing,
		FormattedTotal:  money.Format(pricing.Total),
	}
}

func corporateView() CorporateView {
	tiers := make([]TierOption, len(inquiry.Tiers))
	for i, t := range inquiry.Tiers {
		tiers[i] = TierOption{Value: t, Label: t.Label()}
	}
	return CorporateView{QuantityTiers: tiers}
}

func cartLines(c cart.Cart) []CartLine {
	lines := make([]CartLine, len(c.Items))
	for i, item := range c.Items {
		lines[i] = CartLine{
			CartItem:           item,
			EffectivePrice:     item.UnitPrice(),
			FormattedLineTotal: money.Format(item.LineTotal()),
		}
	}
	return lines
}

func customizableOnly(p catalog.Product) bool {
	return p.Customizable
}

func card(p catalog.Product) ProductCard {
	return ProductCard{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		FormattedPrice: money.Format(p.Price),
		Category:       p.Category,
		Collection:     p.Collection,
		Image:          p.Image,
		HoverImage:     p.HoverImage,
		Colors:         p.Colors,
		Customizable:   p.Customizable,
	}
}

func cards(products []catalog.Product, keep ...func(catalog.Product) bool) []ProductCard {
	out := make([]ProductCard, 0, len(products))
next:
	for _, p := range products {
		for _, k := range keep {
			if !k(p) {
				continue next
			}
		}
		out = append(out, card(p))
	}
	return out
}
