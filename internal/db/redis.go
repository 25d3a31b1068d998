package db

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis returns a client for the geocode cache, or nil when
// REDIS_ADDR is unset. Callers treat a nil client as "no cache".
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, geocode caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Redis unreachable (%v), geocode caching disabled", err)
		return nil
	}

	log.Println("✅ Connected to Redis")
	return client
}
