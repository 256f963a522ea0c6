package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY,
    username text NOT NULL,
    password_hash text NOT NULL,
    email text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique
ON users (username);

CREATE TABLE IF NOT EXISTS games (
    id bigserial PRIMARY KEY,
    name text NOT NULL,
    price double precision NOT NULL CHECK (price >= 0),
    category text NOT NULL DEFAULT 'Uncategorized',
    image text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS orders (
    id text PRIMARY KEY,
    customer_id uuid,
    customer_name text NOT NULL,
    email text NOT NULL,
    address text NOT NULL,
    payment text NOT NULL,
    items jsonb NOT NULL,
    total double precision NOT NULL,
    status text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS orders_customer_id_idx ON orders (customer_id);
CREATE INDEX IF NOT EXISTS orders_customer_name_idx ON orders (customer_name);
`

// Migrate applies the idempotent schema at startup.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}
