package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func New(addr, password string) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, Password: password})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}
