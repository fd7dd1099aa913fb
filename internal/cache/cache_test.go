package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mukesh-219/indian-local-guide-api/internal/slang"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang string
		reg  string
		want string
	}{
		{
			name: "lowercases and trims",
			text: "  Jugaad ",
			lang: "Hindi",
			reg:  "North India",
			want: "translation:jugaad:hindi:north india",
		},
		{
			name: "empty language and region",
			text: "bindaas",
			want: "translation:bindaas::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.text, tt.lang, tt.reg); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

// testClient returns a Redis client or skips when Redis is unavailable.
func testClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis not available, skipping integration test")
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestTranslationCache_RoundTrip(t *testing.T) {
	client := testClient(t)
	c := NewTranslationCache(client, time.Minute, nil)
	ctx := context.Background()

	key := Key("cache-test-jugaad", "hindi", "")
	defer client.Del(ctx, key)

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("expected miss before Set")
	}

	want := &slang.TranslationResult{
		OriginalText:   "jugaad",
		TranslatedText: "hack",
		Confidence:     1.0,
		Alternatives:   []slang.Alternative{{Text: "workaround", Confidence: 0.7}},
	}
	c.Set(ctx, key, want)

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.OriginalText != want.OriginalText || got.TranslatedText != want.TranslatedText {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if len(got.Alternatives) != 1 || got.Alternatives[0].Text != "workaround" {
		t.Errorf("alternatives not preserved: %+v", got.Alternatives)
	}
}

func TestTranslationCache_Invalidate(t *testing.T) {
	client := testClient(t)
	c := NewTranslationCache(client, time.Minute, nil)
	ctx := context.Background()

	keys := []string{
		Key("cache-test-a", "", ""),
		Key("cache-test-b", "hindi", "Delhi"),
	}
	for _, key := range keys {
		c.Set(ctx, key, &slang.TranslationResult{OriginalText: "x", IsUnknown: true})
	}

	c.Invalidate(ctx)

	for _, key := range keys {
		if _, ok := c.Get(ctx, key); ok {
			t.Errorf("key %q survived invalidation", key)
		}
	}
}

func TestTranslationCache_CorruptEntryIsMiss(t *testing.T) {
	client := testClient(t)
	c := NewTranslationCache(client, time.Minute, nil)
	ctx := context.Background()

	key := Key("cache-test-corrupt", "", "")
	if err := client.Set(ctx, key, "{not json", time.Minute).Err(); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}
	defer client.Del(ctx, key)

	if _, ok := c.Get(ctx, key); ok {
		t.Error("corrupt entry should read as a miss")
	}
}
