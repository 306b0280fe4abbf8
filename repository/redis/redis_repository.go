package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/warehouse/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values.
// All methods tolerate a nil client (redis optional in dev).
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// RegisterRequestID claims a correlation id via SETNX; returns false
	// when the id was already claimed (duplicate submission).
	RegisterRequestID(ctx context.Context, requestID string, ttl time.Duration) (bool, error)
}

type redis struct {
	// *redis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// RegisterRequestID claims a request correlation id with SETNX
func (r *redis) RegisterRequestID(ctx context.Context, requestID string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		// without redis the guard is a no-op; every request is first
		return true, nil
	}
	key := "reqid:" + requestID
	return client.SetNX(ctx, key, "1", ttl).Result()
}
