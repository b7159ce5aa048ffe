package denylist

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Connect opens a client and fails fast when Redis is unreachable.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Redis keeps revoked token ids until their own expiry.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

func NewRedis(rdb *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "revoked:"
	}
	return &Redis{rdb: rdb, prefix: prefix}
}

func (d *Redis) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.rdb.Set(ctx, d.prefix+tokenID, "1", ttl).Err()
}

func (d *Redis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, d.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ account.DenyList = (*Redis)(nil)
