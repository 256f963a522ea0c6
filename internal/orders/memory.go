package orders

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gamehub/internal/apperr"
	"gamehub/internal/cart"
)

// MemoryRepo is a mutex-guarded in-memory order store for tests and the
// memory backend.
type MemoryRepo struct {
	mu     sync.RWMutex
	orders map[string]Order
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{orders: make(map[string]Order)}
}

func (r *MemoryRepo) Create(ctx context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return apperr.Conflict("order id already exists")
	}
	o.Items = copyLines(o.Items)
	r.orders[o.ID] = o
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return Order{}, apperr.NotFound("order not found")
	}
	o.Items = copyLines(o.Items)
	return o, nil
}

func (r *MemoryRepo) ListByCustomer(ctx context.Context, customerID, username string) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Order
	for _, o := range r.orders {
		if (customerID != "" && o.CustomerID == customerID) || (username != "" && o.CustomerName == username) {
			o.Items = copyLines(o.Items)
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		o.Items = copyLines(o.Items)
		out = append(out, o)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryRepo) Transition(ctx context.Context, id string, to Status) (Order, Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return Order{}, "", apperr.NotFound("order not found")
	}
	from := o.Status
	if !CanTransition(from, to) {
		return Order{}, "", apperr.Validation(fmt.Sprintf("cannot change status from %s to %s", from, to))
	}
	o.Status = to
	r.orders[id] = o
	o.Items = copyLines(o.Items)
	return o, from, nil
}

func sortNewestFirst(out []Order) {
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
}

func copyLines(in []cart.Line) []cart.Line {
	out := make([]cart.Line, len(in))
	copy(out, in)
	return out
}
