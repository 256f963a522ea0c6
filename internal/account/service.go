package account

import (
	"context"
	"strings"
	"time"

	"gamehub/internal/apperr"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// Service registers and authenticates accounts. Passwords are stored only as
// bcrypt hashes.
type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service { return &Service{Repo: repo} }

func (s *Service) Register(ctx context.Context, username, password, email string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" {
		return User{}, apperr.Validation("All fields are required")
	}
	if len(password) < minPasswordLen {
		return User{}, apperr.Validation("Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperr.Persistence("failed to hash password", err)
	}

	return s.Repo.Create(ctx, User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	})
}

// Authenticate verifies the password against the stored hash. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, apperr.Validation("Username and password required")
	}

	u, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return User{}, apperr.Auth("Invalid credentials")
		}
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, apperr.Auth("Invalid credentials")
	}
	return u, nil
}
