package knowledgeStore

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/google/uuid"
)

// InMemoryKnowledgeStore keeps the corpus in a slice, in insertion order.
// It backs the server when Qdrant is offline and the retrieval tests.
type InMemoryKnowledgeStore struct {
	lock     *sync.RWMutex
	passages []knowledgeModel.Passage
}

func InitInMemoryKnowledgeStore() *InMemoryKnowledgeStore {
	return &InMemoryKnowledgeStore{
		lock:     new(sync.RWMutex),
		passages: make([]knowledgeModel.Passage, 0),
	}
}

func (store *InMemoryKnowledgeStore) InsertPassage(ctx context.Context, passage knowledgeModel.Passage) (string, error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	if passage.Id == "" {
		passage.Id = uuid.New().String()
	}
	passage.CountWords()
	store.passages = append(store.passages, passage)
	return passage.Id, nil
}

func (store *InMemoryKnowledgeStore) SemanticSearch(ctx context.Context, embedding []float32, threshold float32, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	var matches []knowledgeModel.ScoredPassage
	for _, passage := range store.passages {
		if len(passage.Embedding) == 0 || !matchesFilters(passage, filters) {
			continue
		}
		score := CosineSimilarity(embedding, passage.Embedding)
		if score >= threshold {
			matches = append(matches, knowledgeModel.ScoredPassage{Passage: passage, Score: score})
		}
	}

	// stable: equal scores keep insertion order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (store *InMemoryKnowledgeStore) KeywordSearch(ctx context.Context, query string, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	var matches []knowledgeModel.Passage
	for _, passage := range store.passages {
		if !matchesFilters(passage, filters) {
			continue
		}
		if knowledgeModel.MatchesKeyword(passage, query) {
			matches = append(matches, passage)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches, nil
}

func (store *InMemoryKnowledgeStore) HasEmbeddings(ctx context.Context, language string, model string) (bool, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	for _, passage := range store.passages {
		if len(passage.Embedding) > 0 && passage.Language == language && passage.EmbeddingModel == model {
			return true, nil
		}
	}
	return false, nil
}

func matchesFilters(passage knowledgeModel.Passage, filters knowledgeModel.SearchFilters) bool {
	if filters.Language != "" && passage.Language != filters.Language {
		return false
	}
	if filters.Category != "" && passage.Category != filters.Category {
		return false
	}
	if filters.ContentType != "" && string(passage.ContentType) != filters.ContentType {
		return false
	}
	if filters.MonumentId != "" && passage.MonumentId != filters.MonumentId {
		return false
	}
	if filters.EmbeddingModel != "" && passage.EmbeddingModel != filters.EmbeddingModel {
		return false
	}
	return true
}

// CosineSimilarity over two vectors of the same dimensionality.
// Mismatched or zero-norm vectors score 0.
func CosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
