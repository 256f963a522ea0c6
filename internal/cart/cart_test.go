package cart

import "testing"

func line(id int64, price float64, qty int) Line {
	return Line{ProductID: id, Name: "game", Price: price, Quantity: qty}
}

func TestAddItemMergesDuplicates(t *testing.T) {
	c := New()
	c.AddItem(line(1, 10, 1), 1)
	c.AddItem(line(1, 10, 1), 2)
	c.AddItem(line(2, 5, 1), 1)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != 1 || lines[0].Quantity != 3 {
		t.Fatalf("expected product 1 qty 3, got %+v", lines[0])
	}
	if c.ItemCount() != 4 {
		t.Fatalf("expected item count 4, got %d", c.ItemCount())
	}
}

func TestNoDuplicateLinesUnderAnySequence(t *testing.T) {
	c := New()
	c.AddItem(line(1, 10, 1), 1)
	c.ChangeQuantity(1, 2)
	c.AddItem(line(1, 10, 1), 1)
	c.ChangeQuantity(1, -1)
	c.AddItem(line(2, 3, 1), 5)
	c.RemoveItem(2)
	c.AddItem(line(2, 3, 1), 1)

	seen := map[int64]bool{}
	for _, l := range c.Lines() {
		if seen[l.ProductID] {
			t.Fatalf("duplicate line for product %d", l.ProductID)
		}
		seen[l.ProductID] = true
		if l.Quantity < 1 {
			t.Fatalf("line quantity below 1: %+v", l)
		}
	}
}

func TestChangeQuantityRemovesAtZero(t *testing.T) {
	c := New(line(1, 10, 2))
	c.ChangeQuantity(1, -2)
	if !c.Empty() {
		t.Fatalf("expected empty cart, got %+v", c.Lines())
	}

	// unknown product id is a no-op
	c.ChangeQuantity(99, 1)
	if !c.Empty() {
		t.Fatalf("expected no-op for unknown product")
	}
}

func TestTotalMatchesLineSum(t *testing.T) {
	c := New(line(1, 10.00, 2), line(2, 5.00, 1))
	if got := c.Total(); got != 25.00 {
		t.Fatalf("expected total 25.00, got %v", got)
	}

	// same final line set via a different operation order
	c2 := New()
	c2.AddItem(line(2, 5.00, 1), 1)
	c2.AddItem(line(1, 10.00, 1), 1)
	c2.AddItem(line(3, 7.00, 1), 1)
	c2.ChangeQuantity(1, 1)
	c2.RemoveItem(3)
	if c2.Total() != c.Total() {
		t.Fatalf("total not stable under reordering: %v vs %v", c2.Total(), c.Total())
	}
}

func TestDisplayTotalRounds(t *testing.T) {
	c := New(line(1, 0.1, 3))
	if got := c.DisplayTotal(); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
}

func TestNewDropsInvalidQuantities(t *testing.T) {
	c := New(line(1, 10, 0), line(2, 5, -3))
	if !c.Empty() {
		t.Fatalf("expected lines with qty < 1 to be dropped, got %+v", c.Lines())
	}
}

func TestClear(t *testing.T) {
	c := New(line(1, 10, 2))
	c.Clear()
	if !c.Empty() || c.ItemCount() != 0 {
		t.Fatalf("expected cleared cart")
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New(line(1, 10, 2))
	got := c.Lines()
	got[0].Quantity = 99
	if c.Lines()[0].Quantity != 2 {
		t.Fatalf("mutating returned slice changed cart state")
	}
}
