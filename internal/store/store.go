package store

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	fredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

// NewStorage returns a redis backed storage when redisURL is set, otherwise an in-memory one.
func NewStorage(redisURL string, gcInterval time.Duration) (fiber.Storage, error) {
	if redisURL == "" {
		return memory.New(memory.Config{GCInterval: gcInterval}), nil
	}
	if _, err := redis.ParseURL(redisURL); err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return fredis.New(fredis.Config{URL: redisURL}), nil
}
