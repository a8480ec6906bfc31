package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// IncrementWithTTL increments key and starts its TTL on the first hit.
	// It returns the new count and the remaining TTL.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, time.Duration, error)
	// DeleteIfValue removes key only while it still holds value, in one round trip.
	DeleteIfValue(ctx context.Context, key string, value interface{}) (DeleteIfValueResult, error)
}

type DeleteIfValueResult int

const (
	DeleteIfValueOtherOwner DeleteIfValueResult = -1
	DeleteIfValueMissing    DeleteIfValueResult = 0
	DeleteIfValueDeleted    DeleteIfValueResult = 1
)
