package session

import (
	"context"
	"time"
)

// TTL is how long a session lives after login.
const TTL = 24 * time.Hour

// Session binds a browser-held token to an authentication identity. Exactly
// one of the capability flags is set per session: /login grants admin,
// /customer-login grants customer.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	IsAdmin    bool      `json:"is_admin"`
	IsCustomer bool      `json:"is_customer"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (s *Session) Expired() bool { return time.Now().After(s.ExpiresAt) }

// Store holds server-side session state. Get returns (nil, nil) for unknown
// tokens so callers can treat lookup misses and invalid tokens alike.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
