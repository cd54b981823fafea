package shopping

import "github.com/pickleworks/backend/internal/domain/shared"

// CartLine is one entry in a shopping cart. ProductID is the
// string-encoded catalog product ID; Quantity is always positive —
// a line at zero quantity is removed, never stored.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the cart contents for one session. Lines keep insertion
// order so a cart renders the same way across requests.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart creates an empty cart
func NewCart() Cart {
	return Cart{Lines: make([]CartLine, 0)}
}

// Add increments the quantity for the product by one, creating the
// line at quantity 1 when absent. There is no upper bound.
func (c *Cart) Add(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{ProductID: productID, Quantity: 1})
}

// ChangeQuantity applies a quantity delta to an existing line.
// Only deltas of exactly +1 or -1 are legal; anything else is an input
// error and leaves the cart untouched. A delta for a product not in the
// cart is a silent no-op. A line that reaches zero is removed.
func (c *Cart) ChangeQuantity(productID string, delta int) error {
	if delta != 1 && delta != -1 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity change must be +1 or -1")
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		c.Lines[i].Quantity += delta
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return nil
	}
	return nil
}

// Remove deletes the line for the product if present. Never fails.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Quantity returns the quantity for the product, zero when absent
func (c *Cart) Quantity(productID string) int {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear removes all lines from the cart
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
}

// Clone returns a deep copy of the cart
func (c *Cart) Clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
