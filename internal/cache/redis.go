// Package cache provides Redis connection management and cache-aside helpers.
package cache

import (
	"context"
	"time"

	"aurafolio/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client is the shared Redis client. Nil when Redis is unavailable.
var Client *redis.Client

// InitRedis connects to Redis at addr. The application keeps running without
// caching or cross-instance change events if the connection fails.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis connection failed, continuing without cache", "error", err.Error())
		Client = nil
	} else {
		middleware.Logger.Info("Redis connected successfully")
	}
}

// GetClient returns the shared Redis client, or nil.
func GetClient() *redis.Client {
	return Client
}
