package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect builds a redis client from REDIS_ADDR. Returns nil when the
// variable is unset or the server is unreachable; callers must treat a nil
// client as "caching disabled".
func Connect() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis not available at %s, caching disabled: %v", addr, err)
		return nil
	}

	log.Println("Redis connection established")
	return client
}
