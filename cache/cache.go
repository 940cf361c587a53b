package cache

import (
	"context"
	"encoding/json"
	"time"

	"PGRegistry/config"

	"github.com/go-redis/redis/v8"
)

var Client *redis.Client

// Init creates the redis client used for draft persistence and lookups.
func Init(cfg *config.Config) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDb,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return Client.Ping(ctx).Err()
}

// SetCache stores value as JSON under key. A zero ttl means no expiry.
func SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Client.Set(ctx, key, b, ttl).Err()
}

/*
GetCache loads the JSON value stored under key into dest.
The first return reports whether the key existed; a plain miss is
not an error.
*/
func GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	b, err := Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return true, err
	}
	return true, nil
}

func DeleteCache(ctx context.Context, keys ...string) error {
	return Client.Del(ctx, keys...).Err()
}
