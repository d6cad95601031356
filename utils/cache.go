// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"mindwell/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (booking sessions, device tokens).
	CacheClient *redis.Client
	// PresenceCacheClient is the dedicated client for therapist presence keys.
	PresenceCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitPresenceCache initializes the Redis client for presence tracking.
func InitPresenceCache() {
	PresenceCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPresenceDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := PresenceCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Presence): %v", err)
	}
}

// GetPresenceCacheClient returns the Redis client for presence tracking.
func GetPresenceCacheClient() *redis.Client {
	if PresenceCacheClient == nil {
		InitPresenceCache()
	}
	return PresenceCacheClient
}
