package account

import (
	"context"
	"strings"
	"testing"

	"gamehub/internal/apperr"

	"github.com/stretchr/testify/require"
)

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), "alice", "secret123", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice", u.Username)

	stored, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.PasswordHash, "password must never be stored in plaintext")
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "expected a bcrypt hash")
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	cases := []struct{ username, password, email string }{
		{"", "secret123", "a@example.com"},
		{"alice", "", "a@example.com"},
		{"alice", "secret123", ""},
		{"alice", "short", "a@example.com"},
	}
	for _, tc := range cases {
		_, err := svc.Register(ctx, tc.username, tc.password, tc.email)
		require.Error(t, err)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123", "a@example.com")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other-pass", "b@example.com")
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// exactly one record survives
	u, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "a@example.com", u.Email)
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret123", "a@example.com")
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	_, err = svc.Authenticate(ctx, "alice", "wrong-pass")
	require.Error(t, err)
	require.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	// unknown user looks identical to a bad password
	_, err = svc.Authenticate(ctx, "nobody", "secret123")
	require.Error(t, err)
	require.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	require.Equal(t, "Invalid credentials", apperr.Message(err))
}
