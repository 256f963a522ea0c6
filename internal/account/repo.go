package account

import "context"

// Repository stores user accounts. Usernames are unique; Create fails with a
// conflict error on duplicates.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
}
