package retrieval_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/retrieval"
)

func scoredPassages(titles ...string) []knowledgeModel.ScoredPassage {
	out := make([]knowledgeModel.ScoredPassage, 0, len(titles))
	for i, title := range titles {
		out = append(out, knowledgeModel.ScoredPassage{
			Passage: knowledgeModel.Passage{Id: title, Title: title},
			Score:   0.9 - float32(i)*0.1,
		})
	}
	return out
}

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		options       retrieval.SearchOptions
		setupMocks    func(s *MockKnowledgeStore, e *MockEmbedder)
		wantTitles    []string
		wantZeroScore bool
	}{
		{
			name:  "Semantic_Path_Ranked_Matches",
			query: "storia del castello",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {
				s.OnSemanticSearch = func(ctx context.Context, emb []float32, threshold float32, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
					if threshold != config.MatchThreshold {
						t.Errorf("threshold got %v, want %v", threshold, config.MatchThreshold)
					}
					if f.EmbeddingModel != e.ModelID() {
						t.Errorf("filter model got %s, want %s", f.EmbeddingModel, e.ModelID())
					}
					return scoredPassages("Castello", "Borgo"), nil
				}
			},
			wantTitles: []string{"Castello", "Borgo"},
		},
		{
			name:  "Keyword_Fallback_When_No_Embeddings",
			query: "castello",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {
				s.OnHasEmbeddings = func(ctx context.Context, lang, model string) (bool, error) {
					return false, nil
				}
				s.OnKeywordSearch = func(ctx context.Context, q string, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
					return []knowledgeModel.Passage{{Id: "p1", Title: "Castello"}}, nil
				}
				e.OnEmbedText = func(ctx context.Context, text string) ([]float32, error) {
					t.Error("embedder must not be called on the keyword path")
					return nil, nil
				}
			},
			wantTitles:    []string{"Castello"},
			wantZeroScore: true,
		},
		{
			name:  "Model_Mismatch_Falls_Back_To_Keyword",
			query: "castello",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {
				e.Model = "text-embedding-4-future"
				// Store only holds vectors from another model, so the
				// availability check for ours comes back false.
				s.OnHasEmbeddings = func(ctx context.Context, lang, model string) (bool, error) {
					if model != "text-embedding-4-future" {
						t.Errorf("availability checked for model %s, want text-embedding-4-future", model)
					}
					return false, nil
				}
				s.OnKeywordSearch = func(ctx context.Context, q string, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
					return []knowledgeModel.Passage{{Id: "p1", Title: "Castello"}}, nil
				}
			},
			wantTitles:    []string{"Castello"},
			wantZeroScore: true,
		},
		{
			name:       "Empty_Query_No_Results",
			query:      "   ",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {},
			wantTitles: nil,
		},
		{
			name:  "Embedding_Failure_Degrades_To_Empty",
			query: "castello",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {
				e.OnEmbedText = func(ctx context.Context, text string) ([]float32, error) {
					return nil, errors.New("api limit")
				}
			},
			wantTitles: nil,
		},
		{
			name:  "Vector_Search_Failure_Degrades_To_Empty",
			query: "castello",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {
				s.OnSemanticSearch = func(ctx context.Context, emb []float32, threshold float32, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
					return nil, errors.New("db timeout")
				}
			},
			wantTitles: nil,
		},
		{
			name:  "Availability_Check_Failure_Uses_Keyword",
			query: "castello",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {
				s.OnHasEmbeddings = func(ctx context.Context, lang, model string) (bool, error) {
					return false, errors.New("connection refused")
				}
				s.OnKeywordSearch = func(ctx context.Context, q string, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
					return []knowledgeModel.Passage{{Id: "p1", Title: "Castello"}}, nil
				}
			},
			wantTitles:    []string{"Castello"},
			wantZeroScore: true,
		},
		{
			name:  "Keyword_Failure_Degrades_To_Empty",
			query: "castello",
			setupMocks: func(s *MockKnowledgeStore, e *MockEmbedder) {
				s.OnHasEmbeddings = func(ctx context.Context, lang, model string) (bool, error) {
					return false, nil
				}
				s.OnKeywordSearch = func(ctx context.Context, q string, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
					return nil, errors.New("disk full")
				}
			},
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := &MockKnowledgeStore{}
			mEmbed := &MockEmbedder{}
			tt.setupMocks(mStore, mEmbed)

			s := retrieval.NewService(mStore, mEmbed)
			ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

			matches := s.Search(ctx, tt.query, tt.options)

			if len(matches) != len(tt.wantTitles) {
				t.Fatalf("got %d matches, want %d", len(matches), len(tt.wantTitles))
			}
			for i, title := range tt.wantTitles {
				if matches[i].Passage.Title != title {
					t.Errorf("match %d got %s, want %s", i, matches[i].Passage.Title, title)
				}
				if tt.wantZeroScore && matches[i].Score != 0 {
					t.Errorf("keyword match %d got score %v, want 0", i, matches[i].Score)
				}
			}
		})
	}
}

func TestSearch_DefaultsApplied(t *testing.T) {
	mStore := &MockKnowledgeStore{}
	mEmbed := &MockEmbedder{}

	var gotLimit int
	var gotFilters knowledgeModel.SearchFilters
	mStore.OnSemanticSearch = func(ctx context.Context, emb []float32, threshold float32, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
		gotLimit = limit
		gotFilters = f
		return nil, nil
	}
	mStore.OnHasEmbeddings = func(ctx context.Context, lang, model string) (bool, error) {
		if lang != config.CorpusLanguage {
			t.Errorf("availability checked for language %s, want %s", lang, config.CorpusLanguage)
		}
		return true, nil
	}

	s := retrieval.NewService(mStore, mEmbed)
	s.Search(context.Background(), "chiesa madre", retrieval.SearchOptions{})

	if gotLimit != config.SearchResultLimit {
		t.Errorf("limit got %d, want %d", gotLimit, config.SearchResultLimit)
	}
	if gotFilters.Language != config.CorpusLanguage {
		t.Errorf("filter language got %s, want %s", gotFilters.Language, config.CorpusLanguage)
	}
}

func TestSearch_ExplicitOptionsRespected(t *testing.T) {
	mStore := &MockKnowledgeStore{}
	mEmbed := &MockEmbedder{}

	var gotLimit int
	var gotFilters knowledgeModel.SearchFilters
	mStore.OnSemanticSearch = func(ctx context.Context, emb []float32, threshold float32, limit int, f knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
		gotLimit = limit
		gotFilters = f
		return nil, nil
	}

	s := retrieval.NewService(mStore, mEmbed)
	s.Search(context.Background(), "dove mangiare", retrieval.SearchOptions{
		Limit:          2,
		Category:       "gastronomia",
		ContentType:    string(knowledgeModel.ContentFood),
		CorpusLanguage: "en",
	})

	if gotLimit != 2 {
		t.Errorf("limit got %d, want 2", gotLimit)
	}
	if gotFilters.Category != "gastronomia" || gotFilters.ContentType != string(knowledgeModel.ContentFood) || gotFilters.Language != "en" {
		t.Errorf("filters not forwarded: %+v", gotFilters)
	}
}
