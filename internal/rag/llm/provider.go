package llm

import (
	"context"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/rag/llm/gemini"
	"github.com/akolanti/docgenius/internal/rag/llm/openaiLLM"
	"github.com/akolanti/docgenius/internal/rag/llm/simulated"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

// Provider generates a text answer for a query. When matches is non-empty the
// implementation grounds the answer in those context chunks; with no matches
// the query is passed through as a raw prompt.
type Provider interface {
	Name() string
	Generate(ctx context.Context, query string, matches []string) (string, error)
}

// Resolve walks the candidate providers in priority order and returns the
// first one that initializes: OpenAI, then Gemini, then a simulated provider
// that answers with a labeled context excerpt. Resolved once at process start.
func Resolve(ctx context.Context) Provider {
	logger := logger_i.NewLogger("llm_resolver")

	if key := config.OpenAIAPIKey(); key != "" {
		if c := openaiLLM.GetClient(ctx, config.OpenAIModelName, key); c != nil {
			return c
		}
		logger.Error("OpenAI client failed to initialize")
	}

	if key := config.GeminiAPIKey(); key != "" {
		if c := gemini.GetClient(ctx, config.GeminiModelName, key); c != nil {
			return c
		}
		logger.Error("Gemini client failed to initialize")
	}

	logger.Warn("No LLM provider configured, responses will be simulated")
	return simulated.New()
}
