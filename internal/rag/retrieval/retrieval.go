package retrieval

import (
	"context"
	"strings"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/metrics"
	"github.com/avitale/VillageGuideAPI/internal/rag/embedding"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

// SearchOptions narrows a search. CorpusLanguage is the language the
// passages are authored in - it is independent of the language the
// conversation answers in, the two axes never get conflated here.
type SearchOptions struct {
	Limit          int
	Category       string
	MonumentId     string
	ContentType    string
	CorpusLanguage string
}

// Service ranks knowledge passages for a user query. Semantic similarity
// when the corpus carries embeddings from our model, keyword matching
// otherwise. It never returns an error: any provider or storage failure
// degrades to "no results" and the conversation turn proceeds without
// injected context.
type Service interface {
	Search(ctx context.Context, query string, options SearchOptions) []knowledgeModel.ScoredPassage
}

type service struct {
	store    knowledgeModel.KnowledgeStore
	embedder embedding.Embedder
	logger   *logger_i.Logger
}

// NewService constructor - store and embedder are injected so tests can
// substitute fakes.
func NewService(store knowledgeModel.KnowledgeStore, embedder embedding.Embedder) Service {
	return &service{
		store:    store,
		embedder: embedder,
		logger:   logger_i.NewLogger("Retrieval Service :"),
	}
}

func (s *service) Search(ctx context.Context, query string, options SearchOptions) []knowledgeModel.ScoredPassage {
	log := s.logger.WithTrace(ctx)

	if strings.TrimSpace(query) == "" {
		return nil
	}
	if options.Limit <= 0 {
		options.Limit = config.SearchResultLimit
	}
	if options.CorpusLanguage == "" {
		options.CorpusLanguage = config.CorpusLanguage
	}

	filters := knowledgeModel.SearchFilters{
		Category:    options.Category,
		MonumentId:  options.MonumentId,
		ContentType: options.ContentType,
		Language:    options.CorpusLanguage,
	}

	if s.semanticAvailable(ctx, options.CorpusLanguage) {
		return s.semanticSearch(ctx, log, query, options.Limit, filters)
	}

	log.Debug("no usable embeddings, keyword fallback", "language", options.CorpusLanguage)
	return s.keywordSearch(ctx, log, query, options.Limit, filters)
}

// semanticAvailable checks that at least one passage in the corpus language
// carries a vector produced by OUR embedding model. A corpus embedded with a
// different model is treated as having no embeddings at all - comparing
// vectors across models would be silently meaningless.
func (s *service) semanticAvailable(ctx context.Context, language string) bool {
	available, err := s.store.HasEmbeddings(ctx, language, s.embedder.ModelID())
	if err != nil {
		s.logger.WithTrace(ctx).Error("embedding availability check failed", "error", err)
		return false
	}
	return available
}

func (s *service) semanticSearch(ctx context.Context, log *logger_i.Logger, query string, limit int, filters knowledgeModel.SearchFilters) []knowledgeModel.ScoredPassage {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("semantic_search", time.Since(start)) }()

	queryVector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		log.Error("query embedding failed, returning no context", "error", err)
		return nil
	}

	filters.EmbeddingModel = s.embedder.ModelID()
	matches, err := s.store.SemanticSearch(ctx, queryVector, config.MatchThreshold, limit, filters)
	if err != nil {
		log.Error("semantic search failed, returning no context", "error", err)
		return nil
	}
	return matches
}

func (s *service) keywordSearch(ctx context.Context, log *logger_i.Logger, query string, limit int, filters knowledgeModel.SearchFilters) []knowledgeModel.ScoredPassage {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("keyword_search", time.Since(start)) }()

	passages, err := s.store.KeywordSearch(ctx, query, limit, filters)
	if err != nil {
		log.Error("keyword search failed, returning no context", "error", err)
		return nil
	}

	// Score stays 0 on this path - substring matches carry no ranking
	// confidence and must not pretend to.
	matches := make([]knowledgeModel.ScoredPassage, 0, len(passages))
	for _, passage := range passages {
		matches = append(matches, knowledgeModel.ScoredPassage{Passage: passage})
	}
	return matches
}
