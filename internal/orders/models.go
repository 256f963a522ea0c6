package orders

import (
	"time"

	"gamehub/internal/cart"
)

// Order is a placed order. Items and Total are snapshots taken at checkout;
// later catalog edits never touch them. Status is the only field that changes
// after creation.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId,omitempty"`
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Payment      string      `json:"payment"`
	Items        []cart.Line `json:"items"`
	Total        float64     `json:"total"`
	Status       Status      `json:"status"`
	CreatedAt    time.Time   `json:"date"`
}

// Identity is the session identity attached to a checkout. The zero value is
// an anonymous (guest) caller.
type Identity struct {
	CustomerID string
	Username   string
}

func (id Identity) Anonymous() bool { return id.CustomerID == "" }

// Confirmation is returned to the client after a successful checkout. The
// caller owns clearing its cart.
type Confirmation struct {
	OrderID string      `json:"orderId"`
	Items   []cart.Line `json:"items"`
	Total   float64     `json:"total"`
	Payment string      `json:"payment"`
}

// Payment methods accepted at checkout. The method is recorded, never
// executed.
const (
	PaymentCard   = "card"
	PaymentPaypal = "paypal"
	PaymentBank   = "bank"
	PaymentCrypto = "crypto"
)

var validPayments = map[string]bool{
	PaymentCard:   true,
	PaymentPaypal: true,
	PaymentBank:   true,
	PaymentCrypto: true,
}

func ValidPayment(method string) bool { return validPayments[method] }
