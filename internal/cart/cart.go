// Package cart holds the per-session shopping cart. Contents live only in
// process memory: losing the process or the sid cookie empties the cart,
// which mirrors the session-scoped cart of the storefront.
package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one cart line. Unit price is the effective price at add time.
type Item struct {
	ID       int64
	Code     string
	Name     string
	ImageURL string
	Price    decimal.Decimal
	Qty      int
}

func (it Item) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
}

// Cart is an ordered list of lines with at most one line per item id.
// Not safe for concurrent use; Store serializes access per session.
type Cart struct {
	items []Item
}

// Add merges into an existing line by item id, else appends.
func (c *Cart) Add(it Item, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].ID == it.ID {
			c.items[i].Qty += qty
			return
		}
	}
	it.Qty = qty
	c.items = append(c.items, it)
}

// SetQuantity replaces a line's quantity; zero or negative removes the line.
func (c *Cart) SetQuantity(id int64, qty int) {
	if qty <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Qty = qty
			return
		}
	}
}

func (c *Cart) Remove(id int64) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy so callers cannot mutate lines behind the store lock.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Empty() bool { return len(c.items) == 0 }

// Count is the sum of quantities, recomputed on every call.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Qty
	}
	return n
}

// Total is the sum of line subtotals, recomputed on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}
