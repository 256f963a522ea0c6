package catalog

import (
	"context"
	"errors"
	"log"

	"gamehub/internal/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRepo stores games in Postgres. Ids come from a BIGSERIAL so concurrent
// creates never collide.
type PgxRepo struct{ DB *pgxpool.Pool }

func NewPgxRepo(db *pgxpool.Pool) *PgxRepo { return &PgxRepo{DB: db} }

func (r *PgxRepo) List(ctx context.Context) ([]Game, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, price, category, image FROM games ORDER BY id`)
	if err != nil {
		return nil, storeErr("list games", err)
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Price, &g.Category, &g.Image); err != nil {
			return nil, storeErr("scan game", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list games", err)
	}
	return out, nil
}

func (r *PgxRepo) Get(ctx context.Context, id int64) (Game, error) {
	var g Game
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, price, category, image FROM games WHERE id=$1`, id).
		Scan(&g.ID, &g.Name, &g.Price, &g.Category, &g.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return Game{}, apperr.NotFound("game not found")
	}
	if err != nil {
		return Game{}, storeErr("get game", err)
	}
	return g, nil
}

func (r *PgxRepo) Create(ctx context.Context, g Game) (Game, error) {
	if g.Category == "" {
		g.Category = DefaultCategory
	}
	err := r.DB.QueryRow(ctx, `
		INSERT INTO games(name, price, category, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		g.Name, g.Price, g.Category, g.Image).Scan(&g.ID)
	if err != nil {
		return Game{}, storeErr("create game", err)
	}
	return g, nil
}

func (r *PgxRepo) Update(ctx context.Context, id int64, upd Update) (Game, error) {
	g, err := r.Get(ctx, id)
	if err != nil {
		return Game{}, err
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
	ct, err := r.DB.Exec(ctx,
		`UPDATE games SET name=$2, price=$3, category=$4, image=$5 WHERE id=$1`,
		id, g.Name, g.Price, g.Category, g.Image)
	if err != nil {
		return Game{}, storeErr("update game", err)
	}
	if ct.RowsAffected() == 0 {
		return Game{}, apperr.NotFound("game not found")
	}
	return g, nil
}

func (r *PgxRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM games WHERE id=$1`, id)
	if err != nil {
		return storeErr("delete game", err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.NotFound("game not found")
	}
	return nil
}

func storeErr(op string, err error) error {
	log.Printf("catalog: %s: %v", op, err)
	return apperr.Persistence("catalog store failure", err)
}
