package rag

import (
	"context"
	"time"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/metrics"
	"github.com/akolanti/docgenius/internal/rag/ingest"
	"github.com/akolanti/docgenius/internal/rag/vectorDB"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

func (s *service) executeExtractionStep(log *logger_i.Logger, path string) ([]string, int, error) {
	log.Debug("UploadDocument", "Current Step", "Extraction")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_extraction", time.Since(start)) }()

	return ingest.ExtractAndChunk(path)
}

func (s *service) executeBatchEmbeddingStep(ctx context.Context, log *logger_i.Logger, chunks []string) ([][]float32, error) {
	log.Debug("UploadDocument", "Current Step", "BatchEmbedding", "chunks", len(chunks))

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.BatchEmbedding(ctx, chunks)
}

func (s *service) executeEmbeddingStep(ctx context.Context, log *logger_i.Logger, question string) ([]float32, error) {
	log.Debug("AnswerQuestion", "Current Step", "EmbeddingAPICall")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.GetEmbedding(ctx, question)
}

func (s *service) executeCacheCheckStep(ctx context.Context, log *logger_i.Logger, documentID string, question string) (string, bool) {
	log.Debug("AnswerQuestion", "Current Step", "CacheCall")

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	answer, found := s.cache.GetAnswer(ctx, documentID, question)
	if found {
		metrics.IncrementAnswerCacheHits()
	}
	return answer, found
}

func (s *service) executeVectorSearchStep(log *logger_i.Logger, index vectorDB.Index, queryVector []float32) []string {
	log.Debug("AnswerQuestion", "Current Step", "VectorSearch", "indexed chunks", index.Count())

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	return index.Search(queryVector, config.TopKResults)
}

func (s *service) executeLLMStep(ctx context.Context, log *logger_i.Logger, query string, matches []string) (string, error) {
	log.Debug("AnswerQuestion", "Current Step", "LLMCall", "provider", s.llmProvider.Name())

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	return s.llmProvider.Generate(ctx, query, matches)
}
