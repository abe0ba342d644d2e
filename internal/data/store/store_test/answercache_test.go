package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/data/redisStore"
	"github.com/akolanti/docgenius/internal/data/store"
)

func newCacheOverMiniredis(t *testing.T) (*store.RedisAnswerCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return store.TestAnswerCache(redisStore.NewTestStore(client)), mr
}

func TestRedisAnswerCache_Lifecycle(t *testing.T) {
	cache, mr := newCacheOverMiniredis(t)
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		err := cache.SaveAnswer(ctx, "doc-1", "what is this about?", "it is about caching")
		if err != nil {
			t.Fatalf("SaveAnswer failed: %v", err)
		}

		answer, found := cache.GetAnswer(ctx, "doc-1", "what is this about?")
		if !found {
			t.Fatal("Answer was saved but not found")
		}
		if answer != "it is about caching" {
			t.Errorf("Answer mismatch! Got %s", answer)
		}
	})

	t.Run("Different Question Misses", func(t *testing.T) {
		if _, found := cache.GetAnswer(ctx, "doc-1", "a different question"); found {
			t.Error("Expected found=false for a question never asked")
		}
	})

	t.Run("Different Document Misses", func(t *testing.T) {
		if _, found := cache.GetAnswer(ctx, "doc-2", "what is this about?"); found {
			t.Error("Expected found=false for another document")
		}
	})

	t.Run("Entry Expires", func(t *testing.T) {
		mr.FastForward(config.AnswerCacheTTL + time.Minute)

		if _, found := cache.GetAnswer(ctx, "doc-1", "what is this about?"); found {
			t.Error("Answer survived past its TTL")
		}
	})
}

func TestInMemoryAnswerCache(t *testing.T) {
	cache := store.InitInMemoryAnswerCache()
	ctx := context.Background()

	if _, found := cache.GetAnswer(ctx, "doc-1", "q"); found {
		t.Error("Empty cache reported a hit")
	}

	if err := cache.SaveAnswer(ctx, "doc-1", "q", "a"); err != nil {
		t.Fatalf("SaveAnswer failed: %v", err)
	}

	answer, found := cache.GetAnswer(ctx, "doc-1", "q")
	if !found || answer != "a" {
		t.Errorf("Got (%q, %v), want (\"a\", true)", answer, found)
	}
}
