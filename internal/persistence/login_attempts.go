package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginAttemptsPrefix = "login:failures:"

// LoginAttempts counts failed logins per key in fixed windows stored in Redis.
// The window starts at the first failure and is not extended by later ones.
type LoginAttempts struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginAttempts returns a counter that blocks a key after maxFailures
// within window.
func NewLoginAttempts(r *Redis, maxFailures int, window time.Duration) *LoginAttempts {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	la := &LoginAttempts{max: int64(maxFailures), window: window}
	if r != nil {
		la.client = r.Client
	}
	return la
}

// Blocked reports whether key has used up its failures for the current window.
func (l *LoginAttempts) Blocked(ctx context.Context, key string) (bool, error) {
	if l.client == nil {
		return false, errors.New("redis client not configured")
	}
	n, err := l.client.Get(ctx, loginAttemptsPrefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= l.max, nil
}

// RecordFailure increments the counter for key.
func (l *LoginAttempts) RecordFailure(ctx context.Context, key string) error {
	if l.client == nil {
		return errors.New("redis client not configured")
	}
	k := loginAttemptsPrefix + key
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	_, err := pipe.Exec(ctx)
	return err
}

// Reset forgets the failures of key.
func (l *LoginAttempts) Reset(ctx context.Context, key string) error {
	if l.client == nil {
		return errors.New("redis client not configured")
	}
	return l.client.Del(ctx, loginAttemptsPrefix+key).Err()
}
