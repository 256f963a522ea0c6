package orders

import "context"

// Repository is the order store. Orders are append-mostly: created once, read
// back, and mutated only through Transition.
type Repository interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	// ListByCustomer returns orders matching the customer id or, for orders
	// placed before the account link existed, the customer name. Newest first.
	ListByCustomer(ctx context.Context, customerID, username string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	// Transition moves an order to a new status, enforcing the status graph
	// atomically per order. The returned Status is the status the order held
	// immediately before this change, read under the same lock.
	Transition(ctx context.Context, id string, to Status) (Order, Status, error)
}
