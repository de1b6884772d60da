// internal/domain/session/service.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/domain/cart"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/checkout"
	"github.com/zyra-atelier/storefront/internal/domain/studio"
)

// Service applies shopper actions to stored sessions
type Service struct {
	store     Store
	catalog   studio.Catalog
	model     *studio.Model
	logger    *logrus.Logger
	saveDelay time.Duration
	now       func() time.Time
}

// NewService creates a new session service
func NewService(store Store, c studio.Catalog, logger *logrus.Logger, saveDelay time.Duration) *Service {
	return &Service{
		store:     store,
		catalog:   c,
		model:     studio.NewModel(c),
		logger:    logger,
		saveDelay: saveDelay,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Model returns the customization model the service prices designs with
func (s *Service) Model() *studio.Model {
	return s.model
}

// Start creates a new session on the home page
func (s *Service) Start(ctx context.Context) (State, error) {
	state := New(uuid.NewString(), s.now())
	if err := s.store.Create(ctx, state); err != nil {
		return State{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.WithField("session_id", state.ID).Debug("Session started")
	return state, nil
}

// Get loads a session
func (s *Service) Get(ctx context.Context, id string) (State, error) {
	return s.store.Get(ctx, id)
}

// Navigate switches page, optionally selecting a product
func (s *Service) Navigate(ctx context.Context, id string, page Page, productID string) (State, error) {
	var product *catalog.Product
	if productID != "" {
		p, err := s.catalog.Product(productID)
		if err != nil {
			return State{}, err
		}
		product = &p
	}

	return s.update(ctx, id, "navigate", func(st State) (State, error) {
		return st.Navigate(page, product), nil
	})
}

// OpenStudio starts a design for the given product
func (s *Service) OpenStudio(ctx context.Context, id, productID string) (State, error) {
	p, err := s.catalog.Product(productID)
	if err != nil {
		return State{}, err
	}

	return s.update(ctx, id, "open_studio", func(st State) (State, error) {
		return st.OpenStudio(s.model, p)
	})
}

// ApplyStudioOption changes one option of the open design
func (s *Service) ApplyStudioOption(ctx context.Context, id string, kind studio.OptionKind, value string) (State, error) {
	return s.update(ctx, id, "apply_option", func(st State) (State, error) {
		return st.ApplyStudioOption(s.model, kind, value)
	})
}

// SaveDesign captures the open design as it is now, waits out the simulated
// save and then stores the captured copy. Edits made during the wait are not
// part of the saved design. The wait is not interrupted by ctx; the save
// always completes.
func (s *Service) SaveDesign(ctx context.Context, id string) (State, SavedDesign, error) {
	ctx = context.WithoutCancel(ctx)

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return State{}, SavedDesign{}, err
	}
	_, saved, err := current.SaveDesign(uuid.NewString(), s.now())
	if err != nil {
		return State{}, SavedDesign{}, err
	}

	time.Sleep(s.saveDelay)

	saved.SavedAt = s.now()
	state, err := s.update(ctx, id, "save_design", func(st State) (State, error) {
		return st.KeepDesign(saved), nil
	})
	if err != nil {
		return State{}, SavedDesign{}, err
	}
	return state, saved, nil
}

// AddToCart adds a catalog product without customization
func (s *Service) AddToCart(ctx context.Context, id, productID string) (State, cart.CartItem, error) {
	p, err := s.catalog.Product(productID)
	if err != nil {
		return State{}, cart.CartItem{}, err
	}

	var item cart.CartItem
	state, err := s.update(ctx, id, "add_to_cart", func(st State) (State, error) {
		var next State
		next, item = st.AddToCart(p, nil)
		return next, nil
	})
	if err != nil {
		return State{}, cart.CartItem{}, err
	}
	return state, item, nil
}

// AddStudioDesignToCart adds the open design to the cart
func (s *Service) AddStudioDesignToCart(ctx context.Context, id string) (State, cart.CartItem, error) {
	var item cart.CartItem
	state, err := s.update(ctx, id, "add_design_to_cart", func(st State) (State, error) {
		next, added, err := st.AddStudioDesignToCart()
		item = added
		return next, err
	})
	if err != nil {
		return State{}, cart.CartItem{}, err
	}
	return state, item, nil
}

// RemoveFromCart drops a cart line
func (s *Service) RemoveFromCart(ctx context.Context, id, itemID string) (State, error) {
	return s.update(ctx, id, "remove_from_cart", func(st State) (State, error) {
		return st.RemoveFromCart(itemID), nil
	})
}

// BeginCheckout starts the checkout from the address step
func (s *Service) BeginCheckout(ctx context.Context, id string) (State, error) {
	return s.update(ctx, id, "checkout_begin", func(st State) (State, error) {
		return st.BeginCheckout()
	})
}

// SubmitAddress completes the address step
func (s *Service) SubmitAddress(ctx context.Context, id string, addr checkout.Address) (State, error) {
	return s.update(ctx, id, "checkout_address", func(st State) (State, error) {
		return st.SubmitAddress(addr)
	})
}

// SelectShipping completes the shipping step
func (s *Service) SelectShipping(ctx context.Context, id, methodID string) (State, error) {
	return s.update(ctx, id, "checkout_shipping", func(st State) (State, error) {
		return st.SelectShipping(methodID)
	})
}

// SubmitPayment completes the payment step
func (s *Service) SubmitPayment(ctx context.Context, id string, payment checkout.Payment) (State, error) {
	return s.update(ctx, id, "checkout_payment", func(st State) (State, error) {
		return st.SubmitPayment(payment)
	})
}

// PlaceOrder places the simulated order
func (s *Service) PlaceOrder(ctx context.Context, id string) (State, checkout.Order, error) {
	var order checkout.Order
	state, err := s.update(ctx, id, "place_order", func(st State) (State, error) {
		next, placed, err := st.PlaceOrder(s.now())
		order = placed
		return next, err
	})
	if err != nil {
		return State{}, checkout.Order{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id":   id,
		"order_number": order.Number,
		"total":        order.Total,
		"items":        len(order.Items),
	}).Info("Order placed")

	return state, order, nil
}

// Ping checks the session store
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) update(ctx context.Context, id, action string, fn UpdateFunc) (State, error) {
	state, err := s.store.Update(ctx, id, func(st State) (State, error) {
		next, err := fn(st)
		if err != nil {
			return State{}, err
		}
		next.UpdatedAt = s.now()
		return next, nil
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"session_id": id,
			"action":     action,
			"error":      err.Error(),
		}).Debug("Session update rejected")
		return State{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": id,
		"action":     action,
		"page":       state.Page,
	}).Debug("Session updated")

	return state, nil
}
