package cart

import (
	"sync"

	"github.com/Eran2001/store-pro-e-commerce-store-web-service/internal/catalog"
)

// TaxRate is applied to the subtotal. Fixed; the storefront has no notion of
// jurisdictions.
const TaxRate = 0.08

// LineItem is one purchasable configuration in the cart. Size and Color are
// empty when the product has no such option selected.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"selectedSize,omitempty"`
	Color    string          `json:"selectedColor,omitempty"`
}

// Cart owns a shopper's line items plus the drawer-visibility flag. Items
// keep insertion order. Totals are derived on every read, never cached.
//
// Adding merges on the full (product, size, color) identity, while remove
// and quantity updates key on product id alone and therefore hit every
// variant of that product. The asymmetry is deliberate: it is the behavior
// shoppers and the drawer UI currently observe, and the tests pin it down.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
	open  bool
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges quantity into an existing line item with the same product,
// size and color, or appends a new one. A quantity below 1 is treated as 1.
// There is no upper bound: the catalog only records a boolean InStock, so
// there is no stock count to clamp against. A successful add always opens
// the drawer.
func (c *Cart) AddItem(p catalog.Product, quantity int, size, color string) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		it := &c.items[i]
		if it.Product.ID == p.ID && it.Size == size && it.Color == color {
			it.Quantity += quantity
			c.open = true
			return
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: quantity, Size: size, Color: color})
	c.open = true
}

// RemoveItem drops every line item for the product id, across variants.
// Unknown ids are a no-op.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// UpdateQuantity overwrites the quantity on every line item for the product
// id. A quantity below 1 is ignored entirely; removal is an explicit
// RemoveItem, never a side effect of an update.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
		}
	}
}

// Clear empties the cart. The drawer stays in whatever state it was in; an
// open drawer over an empty cart is valid.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

func (c *Cart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *Cart) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = !c.open
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Items returns a snapshot copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]LineItem, len(c.items))
	copy(cp, c.items)
	return cp
}

// ItemCount is the sum of all line-item quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked()
}

// Tax is subtotal times TaxRate, unrounded. Rounding is a display concern.
func (c *Cart) Tax() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subtotalLocked() * TaxRate
}

func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := c.subtotalLocked()
	return sub + sub*TaxRate
}

func (c *Cart) subtotalLocked() float64 {
	sum := 0.0
	for _, it := range c.items {
		sum += it.Product.Price * float64(it.Quantity)
	}
	return sum
}
