package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the shared Redis client used by the result cache and the
// rate limiter. Redis is optional here: the engine holds no durable state, so
// without it the caches fall back in-process and the limiter disables itself.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, result cache will run in-process only")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, continuing without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)
	if res, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("❌ failed to connect to Redis, continuing without it: %v", err)
		return
	} else {
		log.Println("✅ Connected to Redis:", res)
	}

	RedisClient = client
}
