package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"gamehub/internal/apperr"
	"gamehub/internal/cart"
)

func TestMemoryRepoListOrdering(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"ORD-a", "ORD-b", "ORD-c"} {
		err := repo.Create(ctx, Order{
			ID:           id,
			CustomerID:   "u-1",
			CustomerName: "alice",
			Status:       StatusPending,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "ORD-c" || all[2].ID != "ORD-a" {
		t.Fatalf("expected newest first, got %v", all)
	}

	mine, err := repo.ListByCustomer(ctx, "u-1", "alice")
	if err != nil {
		t.Fatalf("list by customer: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("expected 3 customer orders, got %d", len(mine))
	}

	none, err := repo.ListByCustomer(ctx, "u-2", "bob")
	if err != nil {
		t.Fatalf("list by customer: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no orders for other customer, got %d", len(none))
	}
}

func TestMemoryRepoMatchesLegacyOrdersByName(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	// order placed before the customer id was linked
	if err := repo.Create(ctx, Order{ID: "ORD-old", CustomerName: "alice", Status: StatusPending}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := repo.ListByCustomer(ctx, "u-1", "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected legacy order matched by name, got %d", len(mine))
	}
}

func TestMemoryRepoDuplicateID(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Order{ID: "ORD-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.Create(ctx, Order{ID: "ORD-1"})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestMemoryRepoSnapshotIsolation(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	items := []cart.Line{{ProductID: 1, Price: 10, Quantity: 1}}
	if err := repo.Create(ctx, Order{ID: "ORD-1", Items: items}); err != nil {
		t.Fatalf("create: %v", err)
	}
	items[0].Price = 999 // caller mutates its slice after the fact

	got, err := repo.Get(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Items[0].Price != 10 {
		t.Fatalf("stored snapshot was mutated through caller slice")
	}
}

func TestMemoryRepoConcurrentTransitions(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, Order{ID: "ORD-1", Status: StatusPending}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Both race Pending -> Processing; exactly one can win, the loser must
	// see a validation error, never a half-applied state.
	var wg sync.WaitGroup
	outcomes := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, from, err := repo.Transition(ctx, "ORD-1", StatusProcessing)
			if err == nil && from != StatusPending {
				t.Errorf("winner saw prior status %s, want %s", from, StatusPending)
			}
			outcomes <- err
		}()
	}
	wg.Wait()
	close(outcomes)

	var oks, fails int
	for err := range outcomes {
		if err == nil {
			oks++
		} else if apperr.Is(err, apperr.KindValidation) {
			fails++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if oks != 1 || fails != 1 {
		t.Fatalf("expected exactly one winner, got %d ok / %d rejected", oks, fails)
	}
}
