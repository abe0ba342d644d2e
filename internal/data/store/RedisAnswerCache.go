package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/data/redisStore"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

// RedisAnswerCache remembers answers per (document, exact question) with a
// TTL, so repeat questions skip the embedding and LLM round trips.
type RedisAnswerCache struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisAnswerCache(ctx context.Context) *RedisAnswerCache {
	internal := redisStore.GetRedisStore(ctx, config.RedisAnswerCache)
	if internal == nil {
		return nil
	}
	return &RedisAnswerCache{
		store:  internal,
		logger: logger_i.NewLogger("AnswerCache"),
	}
}

func (c *RedisAnswerCache) GetAnswer(ctx context.Context, documentID string, question string) (string, bool) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", documentID)

	answer, err := c.store.Get(ctx, cacheKey(documentID, question))
	if c.store.IsNil(err) {
		return "", false
	} else if err != nil {
		log.Error("Cache lookup failed", "error", err)
		return "", false
	}
	log.Debug("Answer cache hit")
	return answer, true
}

func (c *RedisAnswerCache) SaveAnswer(ctx context.Context, documentID string, question string, answer string) error {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", documentID)

	err := c.store.Set(ctx, cacheKey(documentID, question), answer, config.AnswerCacheTTL)
	if err != nil {
		log.Error("Saving answer to cache failed", "error", err)
	}
	return err
}

func cacheKey(documentID string, question string) string {
	sum := sha256.Sum256([]byte(question))
	return fmt.Sprintf("answer:%s:%s", documentID, hex.EncodeToString(sum[:]))
}

// TestAnswerCache wraps a preconfigured store, for tests against miniredis.
func TestAnswerCache(store *redisStore.Store) *RedisAnswerCache {
	return &RedisAnswerCache{
		store:  store,
		logger: logger_i.NewLogger("test answer cache"),
	}
}
