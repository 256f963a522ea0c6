package cart

import "math"

// Line is one product entry in a cart. The server rebuilds carts from
// checkout submissions to validate and reprice them; the browser-held copy is
// never authoritative for money.
type Line struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered list of lines, at most one per product id.
type Cart struct {
	lines []Line
}

// New builds a cart from raw lines, merging duplicate product ids and
// dropping lines with quantity below 1.
func New(lines ...Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		c.AddItem(l, l.Quantity)
	}
	return c
}

// AddItem merges qty into an existing line for the same product, or appends a
// new line. qty values below 1 count as 1.
func (c *Cart) AddItem(item Line, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == item.ProductID {
			c.lines[i].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.lines = append(c.lines, item)
}

// ChangeQuantity adjusts a line by delta. The line is removed when the new
// quantity drops to zero or below. Unknown product ids are a no-op.
func (c *Cart) ChangeQuantity(productID int64, delta int) {
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// RemoveItem drops the line for productID regardless of quantity.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total sums price*quantity at full float precision.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// DisplayTotal rounds Total to two decimal places.
func (c *Cart) DisplayTotal() float64 {
	return math.Round(c.Total()*100) / 100
}

// ItemCount sums quantities across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Lines returns a copy; callers cannot mutate cart state through it.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() { c.lines = nil }
