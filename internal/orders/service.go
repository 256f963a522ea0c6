package orders

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"time"

	"gamehub/internal/apperr"
	"gamehub/internal/cart"
	kafkax "gamehub/internal/kafka"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher sends an encoded order event. *kafka.Producer satisfies this; a
// nil publisher disables events.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// CheckoutInput is the client-submitted checkout payload. Total is advisory:
// the service recomputes it from the lines and never trusts the client value.
type CheckoutInput struct {
	Items        []cart.Line
	Total        float64
	CustomerName string
	Email        string
	Address      string
	Payment      string
}

// Service owns the checkout workflow and admin status transitions.
type Service struct {
	Repo      Repository
	CreatedEv Publisher
	StatusEv  Publisher
	Producer  string
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo, Producer: "gamehub-api"}
}

// Checkout validates the submitted cart against the session identity, builds
// an order snapshot, and persists it. Not idempotent: two identical calls
// place two orders. The caller clears its cart after a success response.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput, ident Identity) (Confirmation, error) {
	if len(in.Items) == 0 {
		return Confirmation{}, apperr.Validation("cart is empty")
	}
	for _, l := range in.Items {
		if l.Quantity < 1 {
			return Confirmation{}, apperr.Validation(fmt.Sprintf("invalid quantity for item %d", l.ProductID))
		}
		if l.Price < 0 || math.IsNaN(l.Price) || math.IsInf(l.Price, 0) {
			return Confirmation{}, apperr.Validation(fmt.Sprintf("invalid price for item %d", l.ProductID))
		}
	}
	if !ValidPayment(in.Payment) {
		return Confirmation{}, apperr.Validation("invalid payment method")
	}

	// The session username is authoritative for logged-in customers; the
	// free-text name is only accepted for guest checkout.
	name := strings.TrimSpace(in.CustomerName)
	if !ident.Anonymous() {
		name = ident.Username
	}
	if name == "" {
		return Confirmation{}, apperr.Validation("customerName is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return Confirmation{}, apperr.Validation("email is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return Confirmation{}, apperr.Validation("email is invalid")
	}
	if strings.TrimSpace(in.Address) == "" {
		return Confirmation{}, apperr.Validation("address is required")
	}
	if in.Total < 0 || math.IsNaN(in.Total) || math.IsInf(in.Total, 0) {
		return Confirmation{}, apperr.Validation("invalid total")
	}

	c := cart.New(in.Items...)
	total := c.DisplayTotal()

	o := Order{
		ID:           "ORD-" + uuid.NewString(),
		CustomerID:   ident.CustomerID,
		CustomerName: name,
		Email:        in.Email,
		Address:      in.Address,
		Payment:      in.Payment,
		Items:        c.Lines(),
		Total:        total,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, o); err != nil {
		return Confirmation{}, err
	}

	s.publish(s.CreatedEv, EventOrderCreated, o.ID, OrderCreatedPayload{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Items:      o.Items,
		Total:      o.Total,
		Payment:    o.Payment,
	})

	return Confirmation{OrderID: o.ID, Items: o.Items, Total: o.Total, Payment: o.Payment}, nil
}

// UpdateStatus applies an admin status change. The capability check happens
// at the HTTP boundary; the repository enforces the transition graph.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (Order, error) {
	to, ok := ParseStatus(status)
	if !ok {
		return Order{}, apperr.Validation("invalid status")
	}
	// The repository reports the prior status from under its own lock, so the
	// event's From matches the transition that actually happened even when
	// admins race on the same order.
	o, from, err := s.Repo.Transition(ctx, orderID, to)
	if err != nil {
		return Order{}, err
	}

	s.publish(s.StatusEv, EventOrderStatusChanged, o.ID, OrderStatusChangedPayload{
		OrderID: o.ID,
		From:    from,
		To:      o.Status,
	})
	return o, nil
}

func (s *Service) OrdersFor(ctx context.Context, ident Identity) ([]Order, error) {
	return s.Repo.ListByCustomer(ctx, ident.CustomerID, ident.Username)
}

func (s *Service) AllOrders(ctx context.Context) ([]Order, error) {
	return s.Repo.ListAll(ctx)
}

func (s *Service) publish(p Publisher, eventType, orderID string, payload any) {
	if p == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.Producer,
		CorrelationID: orderID,
		Payload:       kafkax.MustMarshal(payload),
	}
	p.Publish(PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
