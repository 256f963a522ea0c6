package account

import (
	"context"
	"errors"
	"log"

	"gamehub/internal/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type PgxRepo struct{ DB *pgxpool.Pool }

func NewPgxRepo(db *pgxpool.Pool) *PgxRepo { return &PgxRepo{DB: db} }

func (r *PgxRepo) Create(ctx context.Context, u User) (User, error) {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO users(id, username, password_hash, email, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Username, u.PasswordHash, u.Email, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return User{}, apperr.Conflict("User already exists")
		}
		return User{}, storeErr("create user", err)
	}
	return u, nil
}

func (r *PgxRepo) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.DB.QueryRow(ctx, `
		SELECT id, username, password_hash, email, created_at
		FROM users WHERE username=$1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, apperr.NotFound("user not found")
	}
	if err != nil {
		return User{}, storeErr("find user", err)
	}
	return u, nil
}

func storeErr(op string, err error) error {
	log.Printf("account: %s: %v", op, err)
	return apperr.Persistence("user store failure", err)
}
