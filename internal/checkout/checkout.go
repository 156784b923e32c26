// Package checkout resolves a cart into an order confirmation. There is no
// payment gateway behind it; processing is a timed local settle that clears
// the cart on success.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/cart"
)

var (
	ErrEmptyCart             = errors.New("checkout: cart is empty")
	ErrUnknownShippingMethod = errors.New("checkout: unknown shipping method")
)

// ShippingMethod is one of the fixed delivery options offered at checkout.
type ShippingMethod struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Days  string  `json:"days"`
}

var shippingMethods = []ShippingMethod{
	{ID: "standard", Name: "Standard Shipping", Price: 0, Days: "5-7"},
	{ID: "express", Name: "Express Shipping", Price: 9.99, Days: "2-3"},
	{ID: "overnight", Name: "Overnight Shipping", Price: 19.99, Days: "1"},
}

// ShippingMethods lists the available options in display order.
func ShippingMethods() []ShippingMethod {
	cp := make([]ShippingMethod, len(shippingMethods))
	copy(cp, shippingMethods)
	return cp
}

// ShippingMethodByID resolves an option; an empty id means standard shipping.
func ShippingMethodByID(id string) (ShippingMethod, bool) {
	if id == "" {
		id = "standard"
	}
	for _, m := range shippingMethods {
		if m.ID == id {
			return m, true
		}
	}
	return ShippingMethod{}, false
}

// Request carries the shipping details collected by the checkout form. The
// card fields never leave the process; they exist so the form round-trips.
type Request struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`
	Country        string `json:"country"`
	ShippingMethod string `json:"shippingMethod"`
}

// Confirmation is the terminal checkout state: a snapshot of what was bought
// and what it cost, including the shipping charge on top of the cart total.
type Confirmation struct {
	OrderNumber  string          `json:"orderNumber"`
	Items        []cart.LineItem `json:"items"`
	Subtotal     float64         `json:"subtotal"`
	Tax          float64         `json:"tax"`
	ShippingCost float64         `json:"shippingCost"`
	Total        float64         `json:"total"`
	PlacedAt     time.Time       `json:"placedAt"`
}

// Service runs the local checkout flow.
type Service struct {
	delay time.Duration
}

// NewService configures the simulated payment delay. Zero is allowed and is
// what the tests use.
func NewService(delay time.Duration) *Service {
	return &Service{delay: delay}
}

// Process settles the cart: it waits the simulated payment delay, snapshots
// the items and totals, clears the cart and returns the confirmation. The
// only failure modes are an empty cart, an unknown shipping method and a
// cancelled context; there is no retry.
func (s *Service) Process(ctx context.Context, c *cart.Cart, req Request) (Confirmation, error) {
	items := c.Items()
	if len(items) == 0 {
		return Confirmation{}, ErrEmptyCart
	}

	method, ok := ShippingMethodByID(req.ShippingMethod)
	if !ok {
		return Confirmation{}, ErrUnknownShippingMethod
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return Confirmation{}, ctx.Err()
		}
	}

	conf := Confirmation{
		OrderNumber:  uuid.NewString(),
		Items:        items,
		Subtotal:     c.Subtotal(),
		Tax:          c.Tax(),
		ShippingCost: method.Price,
		Total:        c.Total() + method.Price,
		PlacedAt:     time.Now().UTC(),
	}

	c.Clear()
	return conf, nil
}
