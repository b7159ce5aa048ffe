package denylist

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRedisDenyList(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	rdb, err := Connect(ctx, Options{Addr: addr})
	if err != nil {
		t.Fatal(err)
	}
	defer rdb.Close()

	d := NewRedis(rdb, "test-revoked:")
	id := uuid.NewString()

	revoked, err := d.IsRevoked(ctx, id)
	if err != nil || revoked {
		t.Fatalf("fresh id revoked=%v err=%v", revoked, err)
	}

	if err := d.Revoke(ctx, id, time.Minute); err != nil {
		t.Fatal(err)
	}
	revoked, err = d.IsRevoked(ctx, id)
	if err != nil || !revoked {
		t.Fatalf("revoked=%v err=%v", revoked, err)
	}

	ttl, err := rdb.TTL(ctx, "test-revoked:"+id).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Fatalf("ttl = %v %v", ttl, err)
	}
}
