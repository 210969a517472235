package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/customHttpClient"
	"github.com/akolanti/DocQA/internal/data/store"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/mcpserver"
	"github.com/akolanti/DocQA/internal/qa"
	"github.com/akolanti/DocQA/internal/qa/ai"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

func main() {

	//stdout belongs to the MCP transport; all logging goes to stderr
	logger_i.InitForStdio("docqa-mcp")
	logger := logger_i.NewLogger("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var documents docModel.DocumentStore
	var history qaModel.HistoryStore

	//nil-check the concrete pointers before they become interfaces
	redisDocuments := store.GetRedisDocumentStore(ctx)
	redisHistory := store.GetRedisHistoryStore(ctx)

	if redisDocuments == nil || redisHistory == nil {
		logger.Error("Redis stores are offline")
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			os.Exit(1)
		}
		logger.Warn("Falling back to in-memory stores; documents uploaded through the API will not be visible")
		documents = store.InitInMemoryDocumentStore()
		history = store.InitInMemoryHistoryStore()
	} else {
		documents = redisDocuments
		history = redisHistory
	}

	qaService := qa.NewService(documents, history, ai.NewSource(customHttpClient.GetPooledClient()))

	srv, err := mcpserver.NewServer(&mcpserver.Params{
		QA:        qaService,
		Documents: documents,
		DefaultAI: defaultAIFromEnv(),
	})
	if err != nil {
		logger.Error("Failed to build MCP server", "error", err)
		os.Exit(1)
	}

	logger.Info("MCP server listening on stdio")
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("MCP server stopped")
}

// defaultAIFromEnv assembles the fallback AI config for tool calls that do
// not name a provider. The environment is consulted only here at the edge;
// an empty provider normalizes to local inside the tool handler.
func defaultAIFromEnv() qaModel.AIConfig {
	return qaModel.AIConfig{
		Provider: qaModel.Provider(os.Getenv("DOCQA_AI_PROVIDER")),
		Model:    os.Getenv("DOCQA_AI_MODEL"),
		APIKey:   os.Getenv("DOCQA_AI_API_KEY"),
	}
}
