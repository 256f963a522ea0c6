package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gamehub/internal/apperr"
	"gamehub/internal/cart"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRepo stores orders in Postgres with the item snapshot as jsonb.
type PgxRepo struct{ DB *pgxpool.Pool }

func NewPgxRepo(db *pgxpool.Pool) *PgxRepo { return &PgxRepo{DB: db} }

func (r *PgxRepo) Create(ctx context.Context, o Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return apperr.Persistence("failed to save order", err)
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO orders(id, customer_id, customer_name, email, address, payment, items, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, nullable(o.CustomerID), o.CustomerName, o.Email, o.Address,
		o.Payment, items, o.Total, string(o.Status), o.CreatedAt)
	if err != nil {
		return storeErr("create order", err)
	}
	return nil
}

func (r *PgxRepo) Get(ctx context.Context, id string) (Order, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT id, customer_id, customer_name, email, address, payment, items, total, status, created_at
		FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, apperr.NotFound("order not found")
	}
	if err != nil {
		return Order{}, storeErr("get order", err)
	}
	return o, nil
}

func (r *PgxRepo) ListByCustomer(ctx context.Context, customerID, username string) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, customer_id, customer_name, email, address, payment, items, total, status, created_at
		FROM orders
		WHERE customer_id = $1 OR customer_name = $2
		ORDER BY created_at DESC`, customerID, username)
	if err != nil {
		return nil, storeErr("list customer orders", err)
	}
	return collectOrders(rows)
}

func (r *PgxRepo) ListAll(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, customer_id, customer_name, email, address, payment, items, total, status, created_at
		FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, storeErr("list orders", err)
	}
	return collectOrders(rows)
}

// Transition locks the order row so concurrent admin updates of the same
// order serialize, then applies the status graph.
func (r *PgxRepo) Transition(ctx context.Context, id string, to Status) (Order, Status, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, "", storeErr("begin transition", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, "", apperr.NotFound("order not found")
	}
	if err != nil {
		return Order{}, "", storeErr("lock order", err)
	}

	from := Status(current)
	if !CanTransition(from, to) {
		return Order{}, "", apperr.Validation(fmt.Sprintf("cannot change status from %s to %s", current, to))
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, id, string(to)); err != nil {
		return Order{}, "", storeErr("update status", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Order{}, "", storeErr("commit transition", err)
	}
	o, err := r.Get(ctx, id)
	if err != nil {
		return Order{}, "", err
	}
	return o, from, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o          Order
		customerID *string
		items      []byte
		status     string
	)
	err := row.Scan(&o.ID, &customerID, &o.CustomerName, &o.Email, &o.Address,
		&o.Payment, &items, &o.Total, &status, &o.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	o.Status = Status(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return Order{}, err
		}
	}
	if o.Items == nil {
		o.Items = []cart.Line{}
	}
	return o, nil
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, storeErr("scan order", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("read orders", err)
	}
	return out, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func storeErr(op string, err error) error {
	log.Printf("orders: %s: %v", op, err)
	return apperr.Persistence("order store failure", err)
}
