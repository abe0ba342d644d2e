package embedding

import (
	"context"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/docgenius/internal/rag/embedding/localEmbedding"
	"github.com/akolanti/docgenius/internal/rag/embedding/openaiEmbedding"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

type Embedder interface {
	Name() string
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error)
}

// Resolve walks the candidate providers in priority order and returns the
// first one that initializes: OpenAI, then Gemini, then the local zero-vector
// stand-in. Resolution happens once at process start; per-call errors from the
// chosen provider propagate to the caller and never trigger a re-selection.
func Resolve(ctx context.Context) Embedder {
	logger := logger_i.NewLogger("embedding_resolver")

	if key := config.OpenAIAPIKey(); key != "" {
		if c := openaiEmbedding.GetClient(ctx, config.OpenAIEmbeddingModel, key); c != nil {
			return c
		}
		logger.Error("OpenAI embedding client failed to initialize")
	}

	if key := config.GeminiAPIKey(); key != "" {
		if c := googleEmbedding.GetClient(ctx, config.GoogleEmbeddingModel, key); c != nil {
			return c
		}
		logger.Error("Google embedding client failed to initialize")
	}

	logger.Warn("No embedding provider configured, using zero-vector stand-in")
	return localEmbedding.New(int(config.EmbeddingOutputDimensionality))
}
