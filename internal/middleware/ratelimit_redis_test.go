package middleware

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStoreFixture connects to a local Redis and skips the test when none
// is running.
func redisStoreFixture(t *testing.T) *RedisRateLimitStore {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis not available, skipping integration test")
	}
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRateLimitStore(client)
}

func uniqueKey(prefix string) string {
	return prefix + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}

func TestRedisRateLimitStore_Allow(t *testing.T) {
	store := redisStoreFixture(t)
	config := RateLimitConfig{RequestsPerWindow: 5, WindowDuration: time.Minute}
	key := uniqueKey("test-redis-allow")
	ctx := context.Background()
	defer store.client.Del(ctx, "ratelimit:"+key)

	for i := 0; i < 5; i++ {
		if allowed, _ := store.Allow(ctx, key, config); !allowed {
			t.Errorf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := store.Allow(ctx, key, config)
	if allowed {
		t.Error("6th request should be blocked")
	}
	if retryAfter <= 0 || retryAfter > 60 {
		t.Errorf("retryAfter = %d, want 1..60", retryAfter)
	}
}

func TestRedisRateLimitStore_WindowExpiry(t *testing.T) {
	store := redisStoreFixture(t)
	config := RateLimitConfig{RequestsPerWindow: 1, WindowDuration: time.Second}
	key := uniqueKey("test-redis-expiry")
	ctx := context.Background()
	defer store.client.Del(ctx, "ratelimit:"+key)

	if allowed, _ := store.Allow(ctx, key, config); !allowed {
		t.Fatal("first request should be allowed")
	}
	if allowed, _ := store.Allow(ctx, key, config); allowed {
		t.Fatal("second request in same window should be blocked")
	}

	time.Sleep(1100 * time.Millisecond)

	if allowed, _ := store.Allow(ctx, key, config); !allowed {
		t.Error("request after window expiry should be allowed")
	}
}
