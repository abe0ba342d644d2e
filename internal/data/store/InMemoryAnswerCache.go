package store

import (
	"context"
	"sync"
)

// InMemoryAnswerCache is the fallback when redis is offline. Entries live for
// the process lifetime, which is acceptable for a best-effort cache.
type InMemoryAnswerCache struct {
	lock    *sync.RWMutex
	answers map[string]string
}

func InitInMemoryAnswerCache() *InMemoryAnswerCache {
	return &InMemoryAnswerCache{
		lock:    new(sync.RWMutex),
		answers: make(map[string]string),
	}
}

func (c *InMemoryAnswerCache) GetAnswer(ctx context.Context, documentID string, question string) (string, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	answer, found := c.answers[cacheKey(documentID, question)]
	return answer, found
}

func (c *InMemoryAnswerCache) SaveAnswer(ctx context.Context, documentID string, question string, answer string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.answers[cacheKey(documentID, question)] = answer
	return nil
}
