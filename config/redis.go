package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// RedisClient stays nil when REDIS_ADDRESS is unset; the report rate
// limiter treats a nil client as "limiting disabled".
var RedisClient *redis.Client

func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		slog.Info("REDIS_ADDRESS not set, report rate limiting disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		slog.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	RedisClient = client
	slog.Info("connected to Redis", "addr", redisAddr)
}
