package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist holds the jti of signed-out tokens until they expire on
// their own. A nil Denylist is valid and revokes nothing: sign-out then
// degrades to client-side token discard.
type Denylist struct {
	rdb *redis.Client
}

func NewDenylist(addr string) (*Denylist, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Denylist{rdb: rdb}, nil
}

func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d == nil || ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, key(jti), "revoked", ttl).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, jti string) bool {
	if d == nil {
		return false
	}
	n, err := d.rdb.Exists(ctx, key(jti)).Result()
	if err != nil {
		// Denylist unavailability must not lock every seller out.
		return false
	}
	return n > 0
}

func key(jti string) string {
	return "session:revoked:" + jti
}
