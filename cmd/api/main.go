// @title           DocGenius API
// @version         1.0
// @description     Upload documents and ask questions about their content

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akolanti/docgenius/internal/config"
	"github.com/akolanti/docgenius/internal/data/metadataStore"
	"github.com/akolanti/docgenius/internal/data/store"
	"github.com/akolanti/docgenius/internal/domain/docModel"
	"github.com/akolanti/docgenius/internal/handlers"
	"github.com/akolanti/docgenius/internal/rag"
	"github.com/akolanti/docgenius/internal/rag/embedding"
	"github.com/akolanti/docgenius/internal/rag/llm"
	"github.com/akolanti/docgenius/internal/rag/vectorDB/flatDB"
	"github.com/akolanti/docgenius/internal/server"
	"github.com/akolanti/docgenius/pkg/logger_i"
)

var listenAddr string

func main() {

	if !config.IsProduction() {
		_ = godotenv.Load()
	}

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	if config.IsProduction() && len(config.CORSAllowedOrigins()) == 0 {
		logger.Error("CORS_ALLOWED_ORIGINS must be set in production. Shutting down.")
		return
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//provider chains resolve once here, requests never re-select
	embedder := embedding.Resolve(serviceContext)
	llmProvider := llm.Resolve(serviceContext)
	logger.Info("Providers resolved", "embedder", embedder.Name(), "llm", llmProvider.Name())

	dataDir := config.DataDir()
	indexStore, err := flatDB.NewStore(dataDir)
	if err != nil {
		logger.Error("Vector store initialization failed. Shutting down.", "error", err)
		return
	}

	var answerCache docModel.AnswerCache
	if redisCache := store.GetRedisAnswerCache(serviceContext); redisCache != nil {
		answerCache = redisCache
	} else {
		logger.Error("Redis answer cache is offline, falling back to memory")
		answerCache = store.InitInMemoryAnswerCache()
	}

	ragService := rag.NewService(rag.ServiceConfig{
		IndexStore:  indexStore,
		LLMProvider: llmProvider,
		Embedder:    embedder,
		Metadata:    metadataStore.NewStore(dataDir),
		AnswerCache: answerCache,
		DataDir:     dataDir,
	})

	handlers.InitDocumentHandler(ragService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
