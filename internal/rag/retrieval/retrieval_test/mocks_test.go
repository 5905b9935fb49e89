package retrieval_test

import (
	"context"

	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
)

// MockKnowledgeStore implements knowledgeModel.KnowledgeStore
type MockKnowledgeStore struct {
	// Control fields to simulate different behaviors
	OnInsertPassage  func(ctx context.Context, passage knowledgeModel.Passage) (string, error)
	OnSemanticSearch func(ctx context.Context, embedding []float32, threshold float32, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error)
	OnKeywordSearch  func(ctx context.Context, query string, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error)
	OnHasEmbeddings  func(ctx context.Context, language string, model string) (bool, error)
}

func (m *MockKnowledgeStore) InsertPassage(ctx context.Context, passage knowledgeModel.Passage) (string, error) {
	if m.OnInsertPassage != nil {
		return m.OnInsertPassage(ctx, passage)
	}
	return "mock-id", nil
}

func (m *MockKnowledgeStore) SemanticSearch(ctx context.Context, embedding []float32, threshold float32, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
	if m.OnSemanticSearch != nil {
		return m.OnSemanticSearch(ctx, embedding, threshold, limit, filters)
	}
	return nil, nil
}

func (m *MockKnowledgeStore) KeywordSearch(ctx context.Context, query string, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
	if m.OnKeywordSearch != nil {
		return m.OnKeywordSearch(ctx, query, limit, filters)
	}
	return nil, nil
}

func (m *MockKnowledgeStore) HasEmbeddings(ctx context.Context, language string, model string) (bool, error) {
	if m.OnHasEmbeddings != nil {
		return m.OnHasEmbeddings(ctx, language, model)
	}
	return true, nil
}

type MockEmbedder struct {
	OnEmbedText func(ctx context.Context, text string) ([]float32, error)
	Model       string
}

func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if m.OnEmbedText != nil {
		return m.OnEmbedText(ctx, text)
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *MockEmbedder) ModelID() string {
	if m.Model != "" {
		return m.Model
	}
	return "test-embedding-model"
}
