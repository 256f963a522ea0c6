package account

import (
	"context"
	"sync"

	"gamehub/internal/apperr"
)

// MemoryRepo is a mutex-guarded in-memory user store for tests and the
// memory backend.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User // keyed by username
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) Create(ctx context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Username]; ok {
		return User{}, apperr.Conflict("User already exists")
	}
	r.users[u.Username] = u
	return u, nil
}

func (r *MemoryRepo) FindByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return User{}, apperr.NotFound("user not found")
	}
	return u, nil
}
