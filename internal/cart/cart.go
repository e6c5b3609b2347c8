// Package cart holds the client-side half of checkout: the cart aggregate,
// the checkout form validation and the HTTP client that turns a cart into
// a persisted order.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/mcastro/storefront/internal/catalog"
)

// Line is one cart entry. Name, Price and Image are captured from the
// product at add-time so later catalog changes do not move the cart.
type Line struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Cart keeps at most one line per product, in insertion order, with every
// quantity >= 1. It belongs to a single session and is not safe for
// concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart { return &Cart{} }

// Add merges into the existing line for the product (quantity +1) or
// appends a new line with quantity 1.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Remove drops the line for the product; absent ids are a no-op.
func (c *Cart) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity. n < 1 removes the line, so a
// quantity below 1 is never stored. Absent ids are a no-op.
func (c *Cart) SetQuantity(productID int64, n int) {
	if n < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = n
			return
		}
	}
}

// Total sums price*quantity over all lines at full decimal precision.
// Rounding is left to the presentation layer.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Line {
	return append([]Line(nil), c.lines...)
}

// Len is the number of distinct lines.
func (c *Cart) Len() int { return len(c.lines) }

// Count is the number of units across all lines (the header badge).
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Clear empties the cart. Called only after a confirmed submission or an
// explicit user action.
func (c *Cart) Clear() { c.lines = nil }
