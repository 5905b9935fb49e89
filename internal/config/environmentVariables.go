package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//auth
	NoAuthBypass = true //local dev only - set false and provide API_AUTH_TOKEN for anything public
	AuthTokenEnv = "API_AUTH_TOKEN"

	//knowledge corpus
	//content is authored in Italian regardless of the language the visitor chats in
	CorpusLanguage      = "it"
	SearchResultLimit   = 5
	MatchThreshold      = float32(0.5)
	KnowledgeCollection = "village-knowledge"

	//conversation
	HistoryWindowTurns = 6  //messages sent to the LLM, older turns are dropped
	TitleMaxRunes      = 50 //conversation title derived from the first user message

	//ingestion
	DefaultMaxChunkSize = 1000 //characters, chunks stay sentence aligned
	MaxUploadBytes      = 32 << 20
	IngestJobTimeout    = 5 * time.Minute //a whole document, page extraction included

	//embeddings - dimensionality must match between ingestion and query time
	OpenAIEmbeddingModel                = "text-embedding-3-small"
	EmbeddingOutputDimensionality int32 = 1536
	OpenAIKeyEnv                        = "OPENAI_API_KEY"

	//llm
	LLMProviderName  = "openai" //"openai" or "gemini"
	OpenAIChatModel  = "gpt-4o-mini"
	GeminiModelName  = "gemini-2.5-flash-lite-preview-09-2025"
	GeminiKeyEnv     = "GEMINI_API_KEY"
	ModelTemperature = 0.7

	//tts
	TTSModel = "tts-1-hd"

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second //LLM round trips are slow
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//ingest jobs buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantHost             = ""
	QdrantPort             = 6333 //http
	QdrantGrpcPort         = 6334
	QdrantUseTLS           = false
	QdrantPoolSize         = 1
	QdrantKeepAliveTimeout = 30 * time.Second

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisConversationStore = 0
	RedisDocumentStore     = 1
	RedisCatalogStore      = 2 //personas + monuments, small read-mostly sets

	//redis timeouts
	RedisDocumentStoreTTL = 7 * 24 * time.Hour
)
