package catalog

import (
	"context"
	"sort"
	"sync"

	"gamehub/internal/apperr"
)

// MemoryRepo is a mutex-guarded in-memory catalog. It backs the memory store
// mode and the package tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	games  map[int64]Game
	nextID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{games: make(map[int64]Game), nextID: 1}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int64) (Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.games[id]
	if !ok {
		return Game{}, apperr.NotFound("game not found")
	}
	return g, nil
}

func (r *MemoryRepo) Create(ctx context.Context, g Game) (Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.Category == "" {
		g.Category = DefaultCategory
	}
	g.ID = r.nextID
	r.nextID++
	r.games[g.ID] = g
	return g, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int64, upd Update) (Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.games[id]
	if !ok {
		return Game{}, apperr.NotFound("game not found")
	}
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.Price != nil {
		g.Price = *upd.Price
	}
	if upd.Category != nil {
		g.Category = *upd.Category
	}
	if upd.Image != nil {
		g.Image = *upd.Image
	}
	r.games[id] = g
	return g, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[id]; !ok {
		return apperr.NotFound("game not found")
	}
	delete(r.games, id)
	return nil
}
