package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gamehub/internal/account"
	"gamehub/internal/session"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Accounts *account.Service
	Sessions session.Store
	// AdminUsers is the set of usernames granted the admin capability on
	// /login. Everyone else only gets the customer capability.
	AdminUsers map[string]bool
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.adminLogin)
	r.Post("/customer-login", h.customerLogin)
	r.Get("/customer-check", h.customerCheck)
	r.Post("/customer-logout", h.logout)
	r.Get("/logout", h.logout)
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := decodeStrict(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	u, err := h.Accounts.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"customer": map[string]string{"username": u.Username},
	})
}

func (h *AuthHandler) adminLogin(w http.ResponseWriter, r *http.Request) {
	u, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	if !h.AdminUsers[u.Username] {
		writeErrorMsg(w, http.StatusForbidden, "Admin access required")
		return
	}
	if !h.startSession(w, r, u, true) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    map[string]string{"username": u.Username},
	})
}

func (h *AuthHandler) customerLogin(w http.ResponseWriter, r *http.Request) {
	u, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	if !h.startSession(w, r, u, false) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"customer": map[string]string{"username": u.Username},
	})
}

func (h *AuthHandler) authenticate(w http.ResponseWriter, r *http.Request) (account.User, bool) {
	var req credentialsReq
	if err := decodeStrict(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid json")
		return account.User{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	u, err := h.Accounts.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return account.User{}, false
	}
	return u, true
}

// startSession always issues a fresh token, discarding any session the
// browser already held. Privilege changes never reuse a token.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, u account.User, admin bool) bool {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		_ = h.Sessions.Delete(ctx, cookie.Value)
	}

	id, err := session.GenerateID()
	if err != nil {
		writeErrorMsg(w, http.StatusInternalServerError, "session error")
		return false
	}
	expiresAt := time.Now().Add(session.TTL)
	err = h.Sessions.Create(ctx, session.Session{
		ID:         id,
		UserID:     u.ID,
		Username:   u.Username,
		IsAdmin:    admin,
		IsCustomer: !admin,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		writeErrorMsg(w, http.StatusInternalServerError, "session error")
		return false
	}
	session.SetCookie(w, id, expiresAt)
	return true
}

func (h *AuthHandler) customerCheck(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		sess, err := h.Sessions.Get(r.Context(), cookie.Value)
		if err == nil && sess != nil && !sess.Expired() && sess.IsCustomer {
			writeJSON(w, http.StatusOK, map[string]any{
				"authenticated": true,
				"username":      sess.Username,
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		_ = h.Sessions.Delete(r.Context(), cookie.Value)
	}
	session.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
