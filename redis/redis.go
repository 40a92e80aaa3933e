package redis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// BlacklistToken stores a logged-out token until its natural expiry.
func BlacklistToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, "blacklist:"+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked via logout.
func IsTokenBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "blacklist:"+token).Result()
	if err != nil {
		log.Printf("redis blacklist check failed: %v", err)
		return false
	}
	return n > 0
}

// CacheSet stores a serialized payload under key with a TTL.
func CacheSet(key string, payload []byte, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	return Client.Set(Ctx, key, payload, ttl).Err()
}

// CacheGet returns the cached payload, or nil when missing or Redis is down.
func CacheGet(key string) []byte {
	if Client == nil {
		return nil
	}
	data, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return data
}
