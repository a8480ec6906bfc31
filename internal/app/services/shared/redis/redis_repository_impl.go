package redis

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// incrementWithTTLScript starts the TTL only on the first hit so the window is
// anchored at the first request and never extended by later ones.
var incrementWithTTLScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// deleteIfValueScript returns 1 when it deleted the key, 0 when the key is
// gone and -1 when the key holds another value.
var deleteIfValueScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current ~= ARGV[1] then
	return -1
end
redis.call("DEL", KEYS[1])
return 1
`)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, time.Duration, error) {
	result, err := incrementWithTTLScript.Run(ctx, r.client, []string{key}, ttl.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, exceptions.ErrRedisIncrement(err)
	}
	if len(result) != 2 {
		return 0, 0, exceptions.ErrRedisIncrement(nil)
	}

	remaining := time.Duration(result[1]) * time.Millisecond
	if remaining < 0 {
		remaining = ttl
	}
	return int(result[0]), remaining, nil
}

func (r *redisRepository) DeleteIfValue(ctx context.Context, key string, value interface{}) (contracts.DeleteIfValueResult, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return contracts.DeleteIfValueMissing, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := deleteIfValueScript.Run(ctx, r.client, []string{key}, string(jsonValue)).Int()
	if err != nil {
		return contracts.DeleteIfValueMissing, exceptions.ErrRedisDelete(err)
	}
	return contracts.DeleteIfValueResult(result), nil
}
