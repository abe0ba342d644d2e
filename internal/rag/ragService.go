package rag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/docgenius/internal/adapter/utils"
	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/domain/docModel"
	"github.com/akolanti/docgenius/internal/metrics"
	"github.com/akolanti/docgenius/internal/rag/embedding"
	"github.com/akolanti/docgenius/internal/rag/ingest"
	"github.com/akolanti/docgenius/internal/rag/llm"
	"github.com/akolanti/docgenius/internal/rag/vectorDB"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

// ErrInvalidDocument rejects uploads with no filename or an extension none of
// the extractors can read. The boundary layer maps it to a 400.
var ErrInvalidDocument = errors.New("missing filename or unsupported document type")

type UploadResult struct {
	DocumentID string
	PageCount  int
}

// Service is the public contract the handlers and the MCP tools call. The
// private struct underneath holds the provider clients and stores so callers
// stay decoupled from them.
type Service interface {
	UploadDocument(ctx context.Context, filename string, file io.Reader) (UploadResult, error)
	AnswerQuestion(ctx context.Context, documentID string, question string) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	ListDocuments(ctx context.Context) ([]docModel.DocumentRecord, error)
}

type ServiceConfig struct {
	IndexStore  vectorDB.IndexStore
	LLMProvider llm.Provider
	Embedder    embedding.Embedder
	Metadata    docModel.MetadataStore
	AnswerCache docModel.AnswerCache
	DataDir     string
}

type service struct {
	indexStore  vectorDB.IndexStore
	llmProvider llm.Provider
	embedder    embedding.Embedder
	metadata    docModel.MetadataStore
	cache       docModel.AnswerCache
	dataDir     string
	logger      *logger_i.Logger
}

// NewService constructor
func NewService(cfg ServiceConfig) Service {
	return &service{
		indexStore:  cfg.IndexStore,
		llmProvider: cfg.LLMProvider,
		embedder:    cfg.Embedder,
		metadata:    cfg.Metadata,
		cache:       cfg.AnswerCache,
		dataDir:     cfg.DataDir,
		logger:      logger_i.NewLogger("RAG Service :"),
	}
}

// UploadDocument runs the ingestion pipeline: persist raw bytes, extract and
// chunk the text, embed the chunks in one batched call, build the index and
// finally register the metadata record. The index is written before the
// metadata so a listed document always has its index; a crash in between
// leaves an orphaned index, which is accepted.
func (s *service) UploadDocument(ctx context.Context, filename string, file io.Reader) (UploadResult, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "filename", filename)

	start := time.Now()
	defer func() { metrics.CaptureRequestMetrics("upload", time.Since(start)) }()

	ext := strings.ToLower(filepath.Ext(filename))
	if filename == "" || !ingest.IsSupportedExtension(ext) {
		return UploadResult{}, ErrInvalidDocument
	}

	processContext, cancel := context.WithTimeout(ctx, config.UploadTimeout)
	defer cancel()

	documentID := utils.GetNewUUID()
	path := filepath.Join(s.dataDir, documentID+ext)
	size, err := s.persistRawDocument(path, file)
	if err != nil {
		return UploadResult{}, fmt.Errorf("storing document: %w", err)
	}
	log = log.With("documentId", documentID)

	// Failures from here on leave the raw file behind on purpose, there is
	// no rollback in this pipeline.
	chunks, pageCount, err := s.executeExtractionStep(log, path)
	if err != nil {
		log.Error("Extraction failed, raw file kept", "path", path, "error", err)
		return UploadResult{}, err
	}

	if len(chunks) > 0 {
		vectors, err := s.executeBatchEmbeddingStep(processContext, log, chunks)
		if err != nil {
			log.Error("Embedding failed, raw file kept", "path", path, "error", err)
			return UploadResult{}, fmt.Errorf("embedding document: %w", err)
		}
		if err := s.indexStore.BuildIndex(processContext, documentID, chunks, vectors); err != nil {
			log.Error("Index build failed, raw file kept", "path", path, "error", err)
			return UploadResult{}, fmt.Errorf("building index: %w", err)
		}
	} else {
		//image-only or empty document: registered but unanswerable
		log.Warn("No extractable content, skipping index creation")
	}

	if _, err := s.metadata.Save(processContext, documentID, filename, size, pageCount); err != nil {
		log.Error("Metadata save failed, index may be orphaned", "error", err)
		return UploadResult{}, fmt.Errorf("saving metadata: %w", err)
	}

	metrics.IncrementDocumentsUploaded()
	log.Info("Document ingested", "pages", pageCount, "chunks", len(chunks))
	return UploadResult{DocumentID: documentID, PageCount: pageCount}, nil
}

// AnswerQuestion retrieves the top chunks for the question from the
// document's index and asks the configured LLM provider.
func (s *service) AnswerQuestion(ctx context.Context, documentID string, question string) (string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", documentID)

	start := time.Now()
	defer func() { metrics.CaptureRequestMetrics("question", time.Since(start)) }()

	processContext, cancel := context.WithTimeout(ctx, config.QuestionTimeout)
	defer cancel()

	if cached, found := s.executeCacheCheckStep(processContext, log, documentID, question); found {
		metrics.IncrementQuestionsAnswered()
		return cached, nil
	}

	index, err := s.indexStore.LoadIndex(processContext, documentID)
	if err != nil {
		return "", err
	}

	queryVector, err := s.executeEmbeddingStep(processContext, log, question)
	if err != nil {
		return "", fmt.Errorf("embedding question: %w", err)
	}

	matches := s.executeVectorSearchStep(log, index, queryVector)

	answer, err := s.executeLLMStep(processContext, log, question, matches)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}

	//background cache save, detached from the request lifetime
	go func() {
		saveCtx, saveCancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer saveCancel()
		if err := s.cache.SaveAnswer(saveCtx, documentID, question, answer); err != nil {
			s.logger.Error("Failed to save answer to cache", "error", err)
		}
	}()

	metrics.IncrementQuestionsAnswered()
	return answer, nil
}

// GenerateText forwards a raw prompt to the resolved LLM provider with no
// retrieval involved.
func (s *service) GenerateText(ctx context.Context, prompt string) (string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	processContext, cancel := context.WithTimeout(ctx, config.QuestionTimeout)
	defer cancel()

	return s.executeLLMStep(processContext, log, prompt, nil)
}

func (s *service) ListDocuments(ctx context.Context) ([]docModel.DocumentRecord, error) {
	return s.metadata.ListAll(ctx)
}

func (s *service) persistRawDocument(path string, file io.Reader) (int64, error) {
	if err := os.MkdirAll(s.dataDir, 0750); err != nil {
		return 0, err
	}
	destination, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer destination.Close()

	size, err := io.Copy(destination, file)
	if err != nil {
		return 0, err
	}
	return size, nil
}
