package catalog

import "context"

// Repository is the catalog store. Implementations must support concurrent
// readers and serialize writers; last-write-wins is acceptable for edits.
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	Get(ctx context.Context, id int64) (Game, error)
	Create(ctx context.Context, g Game) (Game, error)
	Update(ctx context.Context, id int64, upd Update) (Game, error)
	Delete(ctx context.Context, id int64) error
}
