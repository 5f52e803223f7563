package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance. Nil when Redis is not
// configured or unreachable; callers must handle the nil case.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       0,
	})
}

func RedisCtx() context.Context {
	return context.Background()
}
