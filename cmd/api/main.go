// @title           Village Guide API
// @version         1.0
// @description     Tourism chatbot backend - retrieval augmented chat about Muro Lucano and the villages of Basilicata
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/data/catalogStore"
	"github.com/avitale/VillageGuideAPI/internal/data/conversationStore"
	"github.com/avitale/VillageGuideAPI/internal/data/documentStore"
	"github.com/avitale/VillageGuideAPI/internal/data/knowledgeStore"
	"github.com/avitale/VillageGuideAPI/internal/data/knowledgeStore/qdrantStore"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/handlers"
	"github.com/avitale/VillageGuideAPI/internal/ingestjob"
	"github.com/avitale/VillageGuideAPI/internal/rag/agent"
	"github.com/avitale/VillageGuideAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/avitale/VillageGuideAPI/internal/rag/ingest"
	"github.com/avitale/VillageGuideAPI/internal/rag/llm"
	"github.com/avitale/VillageGuideAPI/internal/rag/llm/gemini"
	"github.com/avitale/VillageGuideAPI/internal/rag/llm/openaichat"
	"github.com/avitale/VillageGuideAPI/internal/rag/retrieval"
	"github.com/avitale/VillageGuideAPI/internal/server"
	"github.com/avitale/VillageGuideAPI/internal/tts"
	"github.com/avitale/VillageGuideAPI/internal/worker"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered ingest job channel
	jobChannel := make(chan knowledgeModel.IngestJob, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//conversation + catalog + document stores, in-memory fallback when redis is offline
	var conversations chatModel.ConversationStore
	if redisConversations := conversationStore.GetRedisConversationStore(serviceContext); redisConversations != nil {
		conversations = redisConversations
	} else {
		logger.Error("Redis conversation store is offline, using in-memory store")
		conversations = conversationStore.InitInMemoryConversationStore()
	}

	var documents knowledgeModel.DocumentStore
	if redisDocuments := documentStore.GetRedisDocumentStore(serviceContext); redisDocuments != nil {
		documents = redisDocuments
	} else {
		logger.Error("Redis document store is offline, using in-memory store")
		documents = documentStore.InitInMemoryDocumentStore()
	}

	var catalog chatModel.PersonaStore
	if redisCatalog := catalogStore.GetRedisCatalogStore(serviceContext); redisCatalog != nil {
		catalog = redisCatalog
	} else {
		logger.Error("Redis catalog store is offline, using in-memory store")
		catalog = catalogStore.InitInMemoryCatalogStore()
	}

	ingestService := ingestjob.InitIngestJobService(ingestjob.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		DocumentStore:     documents,
	})

	//external services
	openAIKey := os.Getenv(config.OpenAIKeyEnv)
	embedder := openaiEmbedding.GetOpenAIEmbeddingClient(serviceContext, config.OpenAIEmbeddingModel, openAIKey)

	var knowledge knowledgeModel.KnowledgeStore
	if qdrant := qdrantStore.GetQdrantKnowledgeStore(serviceContext); qdrant != nil {
		knowledge = qdrant
	} else {
		logger.Error("Qdrant is offline, using an empty in-memory knowledge store")
		knowledge = knowledgeStore.InitInMemoryKnowledgeStore()
	}

	var provider llm.Provider
	if config.LLMProviderName == "gemini" {
		provider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, os.Getenv(config.GeminiKeyEnv))
	} else {
		provider = openaichat.GetOpenAIChatClient(serviceContext, config.OpenAIChatModel, openAIKey)
	}

	if embedder == nil || provider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "Embedder", embedder != nil, "LLMProvider", provider != nil)
		return
	}

	//speech is optional, the endpoint answers 503 when absent
	speech := tts.GetSpeechClient(serviceContext, openAIKey)
	if speech == nil {
		logger.Warn("Speech synthesis unavailable, /speech will answer 503")
	}

	retriever := retrieval.NewService(knowledge, embedder)
	guideAgent := agent.NewService(conversations, catalog, retriever, provider)
	pipeline := ingest.NewPipeline(knowledge, embedder)

	handlers.InitHandlers(handlers.Services{
		Agent:         guideAgent,
		Conversations: conversations,
		Personas:      catalog,
		Documents:     documents,
		IngestService: ingestService,
		Speech:        speech,
	})

	//init worker pool
	worker.InitServices(ingestService, pipeline)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
