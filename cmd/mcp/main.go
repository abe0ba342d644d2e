package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/data/metadataStore"
	"github.com/akolanti/docgenius/internal/data/store"
	"github.com/akolanti/docgenius/internal/mcpserver"
	"github.com/akolanti/docgenius/internal/rag"
	"github.com/akolanti/docgenius/internal/rag/embedding"
	"github.com/akolanti/docgenius/internal/rag/llm"
	"github.com/akolanti/docgenius/internal/rag/vectorDB/flatDB"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

func main() {

	if !config.IsProduction() {
		_ = godotenv.Load()
	}

	logger_i.Init()
	var logger = logger_i.NewLogger("mcp-main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataDir := config.DataDir()
	indexStore, err := flatDB.NewStore(dataDir)
	if err != nil {
		logger.Error("Vector store initialization failed. Shutting down.", "error", err)
		os.Exit(1)
	}

	//stdio tool calls are sporadic, the in-memory cache is enough here
	ragService := rag.NewService(rag.ServiceConfig{
		IndexStore:  indexStore,
		LLMProvider: llm.Resolve(ctx),
		Embedder:    embedding.Resolve(ctx),
		Metadata:    metadataStore.NewStore(dataDir),
		AnswerCache: store.InitInMemoryAnswerCache(),
		DataDir:     dataDir,
	})

	mcpServer, err := mcpserver.NewServer(ragService)
	if err != nil {
		logger.Error("MCP server initialization failed", "error", err)
		os.Exit(1)
	}

	logger.Info("MCP server listening on stdio")
	if err := mcpServer.Run(ctx); err != nil {
		logger.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}
