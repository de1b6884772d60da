// internal/domain/session/state.go
package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/zyra-atelier/storefront/internal/domain/cart"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/checkout"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
)

// Page names a storefront screen
type Page string

const (
	PageHome      Page = "home"
	PageShop      Page = "shop"
	PagePDP       Page = "pdp"
	PageStudio    Page = "studio"
	PageCart      Page = "cart"
	PageCheckout  Page = "checkout"
	PageAccount   Page = "account"
	PageSuccess   Page = "success"
	PageCorporate Page = "corporate"
	PageGift      Page = "gift"
)

// Pages lists every page in navigation order
var Pages = []Page{
	PageHome, PageShop, PagePDP, PageStudio, PageCart,
	PageCheckout, PageAccount, PageSuccess, PageCorporate, PageGift,
}

var (
	// ErrUnknownPage is returned for a page name outside Pages
	ErrUnknownPage = errors.New("unknown page")
	// ErrNoDesign means the studio has no open design
	ErrNoDesign = errors.New("no design in progress")
)

// ParsePage validates a page name
func ParsePage(name string) (Page, error) {
	p := Page(name)
	if !slices.Contains(Pages, p) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	return p, nil
}

// SavedDesign is a studio design kept for later, not yet in the cart
type SavedDesign struct {
	ID      string          `json:"id"`
	Product catalog.Product `json:"product"`
	Design  studio.State    `json:"design"`
	SavedAt time.Time       `json:"saved_at"`
}

// State is everything one shopper session holds. Transitions are methods
// with value receivers that return the next state and leave the receiver
// untouched.
type State struct {
	ID              string            `json:"id"`
	Page            Page              `json:"page"`
	SelectedProduct *catalog.Product  `json:"selected_product,omitempty"`
	Studio          *studio.State     `json:"studio,omitempty"`
	Cart            cart.Cart         `json:"cart"`
	SavedDesigns    []SavedDesign     `json:"saved_designs"`
	Checkout        checkout.Progress `json:"checkout"`
	Orders          []checkout.Order  `json:"orders"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// New returns a fresh session on the home page
func New(id string, now time.Time) State {
	return State{
		ID:           id,
		Page:         PageHome,
		SavedDesigns: []SavedDesign{},
		Checkout:     checkout.Begin(),
		Orders:       []checkout.Order{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Clone returns a deep copy of s
func (s State) Clone() State {
	if s.SelectedProduct != nil {
		p := s.SelectedProduct.Clone()
		s.SelectedProduct = &p
	}
	if s.Studio != nil {
		s.Studio = studio.ToCartSnapshot(*s.Studio)
	}
	s.Cart = s.Cart.Clone()

	designs := make([]SavedDesign, len(s.SavedDesigns))
	for i, d := range s.SavedDesigns {
		d.Product = d.Product.Clone()
		d.Design = d.Design.Clone()
		designs[i] = d
	}
	s.SavedDesigns = designs

	orders := make([]checkout.Order, len(s.Orders))
	for i, o := range s.Orders {
		o.Items = cart.Cart{Items: o.Items}.Clone().Items
		orders[i] = o
	}
	s.Orders = orders

	if s.Checkout.Address != nil {
		a := *s.Checkout.Address
		s.Checkout.Address = &a
	}
	if s.Checkout.ShippingMethod != nil {
		m := *s.Checkout.ShippingMethod
		s.Checkout.ShippingMethod = &m
	}
	return s
}

// RenderedPage is the page actually shown. Product detail and studio need a
// selected product; without one they fall back to home.
func (s State) RenderedPage() Page {
	switch s.Page {
	case PagePDP:
		if s.SelectedProduct == nil {
			return PageHome
		}
	case PageStudio:
		if s.SelectedProduct == nil || s.Studio == nil {
			return PageHome
		}
	case "":
		return PageHome
	}
	return s.Page
}

// LastOrder returns the most recently placed order
func (s State) LastOrder() (checkout.Order, bool) {
	if len(s.Orders) == 0 {
		return checkout.Order{}, false
	}
	return s.Orders[len(s.Orders)-1], true
}

// Navigate switches page. A non-nil product becomes the selected product.
func (s State) Navigate(page Page, product *catalog.Product) State {
	next := s.Clone()
	next.Page = page
	if product != nil {
		p := product.Clone()
		next.SelectedProduct = &p
	}
	return next
}

// OpenStudio starts a new design for p and shows the studio
func (s State) OpenStudio(m *studio.Model, p catalog.Product) (State, error) {
	if !p.Customizable {
		return s, fmt.Errorf("%w: %s", studio.ErrNotCustomizable, p.ID)
	}

	design, err := m.Initialize(p)
	if err != nil {
		return s, err
	}

	next := s.Navigate(PageStudio, &p)
	next.Studio = &design
	return next, nil
}

// ApplyStudioOption changes one option of the open design
func (s State) ApplyStudioOption(m *studio.Model, kind studio.OptionKind, value string) (State, error) {
	if s.Studio == nil {
		return s, ErrNoDesign
	}

	design, err := m.ApplyOption(*s.Studio, kind, value)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	next.Studio = &design
	return next, nil
}

// AddToCart appends p, with an optional design, and shows the cart
func (s State) AddToCart(p catalog.Product, design *studio.State) (State, cart.CartItem) {
	next := s.Clone()
	var item cart.CartItem
	next.Cart, item = next.Cart.Add(p, design)
	next.Page = PageCart
	return next, item
}

// AddStudioDesignToCart adds a snapshot of the open design. The design
// stays open in the studio.
func (s State) AddStudioDesignToCart() (State, cart.CartItem, error) {
	if s.Studio == nil || s.SelectedProduct == nil {
		return s, cart.CartItem{}, ErrNoDesign
	}
	next, item := s.AddToCart(*s.SelectedProduct, s.Studio)
	return next, item, nil
}

// RemoveFromCart drops a cart line. Unknown ids leave the cart as is.
func (s State) RemoveFromCart(itemID string) State {
	next := s.Clone()
	next.Cart = next.Cart.Remove(itemID)
	return next
}

// SaveDesign stores a copy of the open design in the saved designs list
func (s State) SaveDesign(id string, savedAt time.Time) (State, SavedDesign, error) {
	if s.Studio == nil || s.SelectedProduct == nil {
		return s, SavedDesign{}, ErrNoDesign
	}

	saved := SavedDesign{
		ID:      id,
		Product: s.SelectedProduct.Clone(),
		Design:  s.Studio.Clone(),
		SavedAt: savedAt,
	}

	next := s.Clone()
	next.SavedDesigns = append(next.SavedDesigns, saved)
	return next, saved, nil
}

// BeginCheckout shows the checkout on its first step. Progress from an
// earlier visit is discarded.
func (s State) BeginCheckout() (State, error) {
	if s.Cart.IsEmpty() {
		return s, checkout.ErrEmptyCart
	}

	next := s.Clone()
	next.Checkout = checkout.Begin()
	next.Page = PageCheckout
	return next, nil
}

// KeepDesign appends an already captured design to the saved designs list
func (s State) KeepDesign(saved SavedDesign) State {
	next := s.Clone()
	saved.Product = saved.Product.Clone()
	saved.Design = saved.Design.Clone()
	next.SavedDesigns = append(next.SavedDesigns, saved)
	return next
}

// SubmitAddress completes the first checkout step
func (s State) SubmitAddress(addr checkout.Address) (State, error) {
	return s.advanceCheckout(func(p checkout.Progress) (checkout.Progress, error) {
		return p.SubmitAddress(addr)
	})
}

// SelectShipping completes the second checkout step
func (s State) SelectShipping(methodID string) (State, error) {
	return s.advanceCheckout(func(p checkout.Progress) (checkout.Progress, error) {
		return p.SelectShipping(methodID)
	})
}

// SubmitPayment completes the third checkout step
func (s State) SubmitPayment(payment checkout.Payment) (State, error) {
	return s.advanceCheckout(func(p checkout.Progress) (checkout.Progress, error) {
		return p.SubmitPayment(payment)
	})
}

func (s State) advanceCheckout(step func(checkout.Progress) (checkout.Progress, error)) (State, error) {
	if s.Cart.IsEmpty() {
		return s, checkout.ErrEmptyCart
	}

	progress, err := step(s.Checkout)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	next.Checkout = progress
	next.Page = PageCheckout
	return next, nil
}

// PlaceOrder records the order, empties the cart, resets checkout and
// shows the success page
func (s State) PlaceOrder(placedAt time.Time) (State, checkout.Order, error) {
	order, err := s.Checkout.PlaceOrder(s.Cart, placedAt)
	if err != nil {
		return s, checkout.Order{}, err
	}

	next := s.Clone()
	next.Orders = append(next.Orders, order)
	next.Cart = cart.Cart{}
	next.Checkout = checkout.Begin()
	next.Page = PageSuccess
	return next, order, nil
}
