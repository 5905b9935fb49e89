package main

import (
	"context"
	"flag"
	"os"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/data/catalogStore"
	"github.com/avitale/VillageGuideAPI/internal/data/knowledgeStore/qdrantStore"
	"github.com/avitale/VillageGuideAPI/internal/rag/embedding"
	"github.com/avitale/VillageGuideAPI/internal/rag/embedding/openaiEmbedding"
	"github.com/avitale/VillageGuideAPI/internal/seed"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

// Loads the Muro Lucano corpus into qdrant and redis. Run once against a
// fresh deployment, or again after wiping the knowledge collection.
func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("seed")

	skipEmbeddings := flag.Bool("skip-embeddings", false, "load the corpus without vectors, search stays on the keyword fallback")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	catalog := catalogStore.GetRedisCatalogStore(serviceContext)
	if catalog == nil {
		logger.Error("Redis catalog store is offline. Shutting down.")
		os.Exit(1)
	}

	knowledge := qdrantStore.GetQdrantKnowledgeStore(serviceContext)
	if knowledge == nil {
		logger.Error("Qdrant knowledge store is offline. Shutting down.")
		os.Exit(1)
	}

	var embedder embedding.Embedder
	if !*skipEmbeddings {
		embedder = openaiEmbedding.GetOpenAIEmbeddingClient(serviceContext, config.OpenAIEmbeddingModel, os.Getenv(config.OpenAIKeyEnv))
		if embedder == nil {
			logger.Error("OpenAI embedding client failed to initialize. Retry with --skip-embeddings for a keyword-only corpus.")
			os.Exit(1)
		}
	}

	seeder := seed.NewSeeder(catalog, knowledge, embedder)
	summary := seeder.Run(serviceContext)
	if summary.Failed > 0 {
		logger.Warn("Seeding finished with failures", "failed", summary.Failed)
		os.Exit(1)
	}
}
