package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//chunking - fixed character window with an overlap carried into the
	//next chunk; overlap must stay below the window
	ChunkSize    = 1000
	ChunkOverlap = 200

	//retrieval
	TopKResults = 4

	//TODO:this will differ based on the request and provider
	EmbeddingOutputDimensionality int32 = 1536

	MaxUploadSize = 32 << 20 //32mb

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//request-scoped timeouts for external providers
	UploadTimeout   = 120 * time.Second
	QuestionTimeout = 60 * time.Second

	//server listening port
	ServerListenAddr = ":8000"

	//llm
	GeminiModelName = "gemini-2.5-flash-lite-preview-09-2025"
	OpenAIModelName = "gpt-3.5-turbo"

	//embeddings
	GoogleEmbeddingModel = "gemini-embedding-001"
	OpenAIEmbeddingModel = "text-embedding-3-small"

	ModelTemperature float32 = 0.0
	ModelContext             = "You are a helpful assistant. Use the provided document context to answer the question. If the answer is not contained in the context, say you don't know."

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword    = ""
	RedisAnswerCache = 0

	AnswerCacheTTL = 24 * time.Hour
)

// IsProduction reports whether the process runs in production mode.
// Production requires an explicit CORS allow-list and redacts error details.
func IsProduction() bool {
	return os.Getenv("DOCGENIUS_ENV") == "production"
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// DataDir is where raw documents, vector stores and the metadata file live.
func DataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// CORSAllowedOrigins returns the configured allow-list. Empty means
// "allow all" which main refuses to run with in production.
func CORSAllowedOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
