package httpx

import (
	"context"
	"net/http"

	"gamehub/internal/apperr"
	"gamehub/internal/session"
)

type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFrom returns the authenticated session attached by the auth gate,
// or nil.
func SessionFrom(ctx context.Context) *session.Session {
	s, _ := ctx.Value(sessionKey).(*session.Session)
	return s
}

// Auth is the capability gate over the session store.
type Auth struct {
	Store session.Store
}

func NewAuth(store session.Store) *Auth { return &Auth{Store: store} }

// load resolves the request's session cookie, enforcing expiry. Returns a nil
// session for missing, unknown, or expired tokens; a session-store failure is
// returned as an error rather than treated as an anonymous request.
func (a *Auth) load(r *http.Request) (*session.Session, error) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}
	sess, err := a.Store.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil, apperr.Persistence("session lookup failed", err)
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired() {
		_ = a.Store.Delete(r.Context(), sess.ID)
		return nil, nil
	}
	return sess, nil
}

// RequireCustomer rejects requests without a customer session (401).
func (a *Auth) RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := a.load(r)
		if err != nil {
			writeError(w, err)
			return
		}
		if sess == nil || !sess.IsCustomer {
			writeErrorMsg(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

// RequireAdmin rejects requests without an admin session (403).
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := a.load(r)
		if err != nil {
			writeError(w, err)
			return
		}
		if sess == nil || !sess.IsAdmin {
			writeErrorMsg(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}
