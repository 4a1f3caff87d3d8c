package database

import (
	"context"

	"github.com/wegnite/saasTemplate/config"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis opens the cache connection. Callers treat a nil client as
// "cache disabled", so a failed connection is not fatal to the service.
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
