package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	//auth is off for local dev; set a token and flip the bypass for anything exposed
	NoAuthBypass = true
	AuthToken    = ""

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//job execution ceiling, covers every pipeline step of one job
	JobExecutionTimeout = 60 * time.Second

	//extraction
	PageExtractTimeout     = 10 * time.Second
	MaxUploadBytes         = 32 << 20
	IngestConcurrencyLimit = 5

	//retrieval pipeline budgets
	MinKeywordLength     = 3 //tokens shorter than this never become keywords
	MaxContextPassages   = 5
	PassageCharBudget    = 1500
	MaxCitations         = 3
	CitationExcerptChars = 200
	FallbackPassageCount = 3

	//llm
	SynthesisTimeout                = 30 * time.Second
	OpenAIModelName                 = "gpt-4o"
	OpenAIFallbackModelName         = "gpt-4o-mini"
	GeminiModelName                 = "gemini-2.5-flash"
	GeminiFallbackModelName         = "gemini-2.5-flash-lite-preview-09-2025"
	ModelTemperature        float32 = 0.2
	MaxOutputTokens                 = 800
	SynthesisSystemPrompt           = "You answer questions using only the document excerpts provided. If the excerpts do not contain the answer, say so explicitly. Cite the document name and page number when relevant."

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisDocumentStore = 0
	RedisJobStore      = 1
	RedisHistoryStore  = 2

	//redis timeouts
	RedisDocumentStoreTTL = 24 * time.Hour
	RedisJobStoreTTL      = 24 * time.Hour
	RedisHistoryStoreTTL  = 24 * time.Hour

	//history
	HistoryFetchCount       = 5
	HistoryMaxRecords int64 = 100

	//mcp
	MCPServerName    = "docqa"
	MCPServerVersion = "1.0.0"
)
