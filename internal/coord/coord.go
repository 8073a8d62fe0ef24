// Package coord implements COORD: a short-TTL key/value store used for
// single-writer critical sections during booking, cancellation, and scan
// (spec.md §4.2). Grounded on search-api's Cache interface shape
// (internal/cache/cache.go) and its SetNX lock primitive, reimplemented
// against a real Redis client (github.com/redis/go-redis/v9, carried by
// search-api's go.mod and the pack's voyago-go-boilerplate manifest) because
// safe release requires a compare-and-delete that memcache cannot express.
package coord

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Locker is the COORD contract: acquire a named exclusion token with a
// bounded TTL, release it unconditionally on exit. TTL guarantees release
// even on crash (spec.md §5).
type Locker interface {
	// Acquire attempts to take the lock named by key. ok is false if another
	// holder currently holds it; token must be passed back to Release.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
	Close() error
}

// releaseScript deletes key only if its value still matches token, so a
// slow caller can never release a lock acquired by someone else after its
// own TTL expired.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

type redisLocker struct {
	client *redis.Client
	script *redis.Script
}

// NewRedisLocker connects to the COORD Redis endpoint.
func NewRedisLocker(addr string) (Locker, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisLocker{
		client: client,
		script: redis.NewScript(releaseScript),
	}, nil
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.New().String()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *redisLocker) Release(ctx context.Context, key, token string) error {
	_, err := l.script.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}

func (l *redisLocker) Close() error {
	return l.client.Close()
}
