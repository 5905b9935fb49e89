package knowledgeStore

import (
	"context"
	"testing"

	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
)

func seedPassage(t *testing.T, store *InMemoryKnowledgeStore, passage knowledgeModel.Passage) {
	t.Helper()
	if _, err := store.InsertPassage(context.Background(), passage); err != nil {
		t.Fatalf("InsertPassage failed: %v", err)
	}
}

func TestSemanticSearch_ClosestVectorRanksFirst(t *testing.T) {
	store := InitInMemoryKnowledgeStore()
	seedPassage(t, store, knowledgeModel.Passage{
		Title:          "Castello - Storia Medievale",
		Content:        "Il castello normanno",
		Language:       "it",
		Embedding:      []float32{1, 0, 0},
		EmbeddingModel: "m1",
	})
	seedPassage(t, store, knowledgeModel.Passage{
		Title:          "Canyon delle Ripe - Descrizione",
		Content:        "La gola del fiume Rescio",
		Language:       "it",
		Embedding:      []float32{0.7, 0.7, 0},
		EmbeddingModel: "m1",
	})

	matches, err := store.SemanticSearch(context.Background(), []float32{1, 0, 0}, 0.5, 5, knowledgeModel.SearchFilters{Language: "it"})
	if err != nil {
		t.Fatalf("SemanticSearch failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Passage.Title != "Castello - Storia Medievale" {
		t.Errorf("got %q first, want the identical vector", matches[0].Passage.Title)
	}
	if matches[0].Score < matches[1].Score {
		t.Errorf("scores not descending: %f then %f", matches[0].Score, matches[1].Score)
	}
}

func TestSemanticSearch_ThresholdAndLimit(t *testing.T) {
	store := InitInMemoryKnowledgeStore()
	seedPassage(t, store, knowledgeModel.Passage{
		Title:          "lontano",
		Content:        "x",
		Language:       "it",
		Embedding:      []float32{0, 1, 0}, //orthogonal, scores 0
		EmbeddingModel: "m1",
	})
	for i := 0; i < 3; i++ {
		seedPassage(t, store, knowledgeModel.Passage{
			Title:          "vicino",
			Content:        "x",
			Language:       "it",
			Embedding:      []float32{1, 0, 0},
			EmbeddingModel: "m1",
		})
	}

	matches, err := store.SemanticSearch(context.Background(), []float32{1, 0, 0}, 0.5, 2, knowledgeModel.SearchFilters{})
	if err != nil {
		t.Fatalf("SemanticSearch failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("got %d matches, want limit of 2", len(matches))
	}
	for _, match := range matches {
		if match.Passage.Title != "vicino" {
			t.Errorf("below-threshold passage %q leaked through", match.Passage.Title)
		}
	}
}

func TestSemanticSearch_ModelFilterExcludesForeignVectors(t *testing.T) {
	store := InitInMemoryKnowledgeStore()
	seedPassage(t, store, knowledgeModel.Passage{
		Title:          "old model",
		Content:        "x",
		Embedding:      []float32{1, 0, 0},
		EmbeddingModel: "m1",
	})
	seedPassage(t, store, knowledgeModel.Passage{
		Title:          "new model",
		Content:        "x",
		Embedding:      []float32{1, 0, 0},
		EmbeddingModel: "m2",
	})

	matches, err := store.SemanticSearch(context.Background(), []float32{1, 0, 0}, 0.5, 5, knowledgeModel.SearchFilters{EmbeddingModel: "m2"})
	if err != nil {
		t.Fatalf("SemanticSearch failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Passage.Title != "new model" {
		t.Errorf("got %d matches, want only the m2 vector", len(matches))
	}
}

func TestKeywordSearch_SubstringAndLimit(t *testing.T) {
	store := InitInMemoryKnowledgeStore()
	seedPassage(t, store, knowledgeModel.Passage{Title: "Castello - Storia", Content: "il castello normanno", Language: "it"})
	seedPassage(t, store, knowledgeModel.Passage{Title: "Castello - Restauro", Content: "ricostruzione del castello", Language: "it"})
	seedPassage(t, store, knowledgeModel.Passage{Title: "Cattedrale", Content: "la facciata", Language: "it"})

	matches, err := store.KeywordSearch(context.Background(), "CASTELLO", 1, knowledgeModel.SearchFilters{Language: "it"})
	if err != nil {
		t.Fatalf("KeywordSearch failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want limit of 1", len(matches))
	}
	if matches[0].Title != "Castello - Storia" {
		t.Errorf("got %q, want first insertion-order match", matches[0].Title)
	}
}

func TestHasEmbeddings_PerLanguageAndModel(t *testing.T) {
	store := InitInMemoryKnowledgeStore()

	if found, _ := store.HasEmbeddings(context.Background(), "it", "m1"); found {
		t.Error("empty store reports embeddings")
	}

	seedPassage(t, store, knowledgeModel.Passage{Title: "no vector", Content: "x", Language: "it"})
	if found, _ := store.HasEmbeddings(context.Background(), "it", "m1"); found {
		t.Error("vectorless passage counted as embedded")
	}

	seedPassage(t, store, knowledgeModel.Passage{
		Title: "vector", Content: "x", Language: "it",
		Embedding: []float32{1}, EmbeddingModel: "m1",
	})
	if found, _ := store.HasEmbeddings(context.Background(), "it", "m1"); !found {
		t.Error("embedded passage not reported")
	}
	if found, _ := store.HasEmbeddings(context.Background(), "it", "m2"); found {
		t.Error("embeddings reported for a model that never produced vectors")
	}
	if found, _ := store.HasEmbeddings(context.Background(), "en", "m1"); found {
		t.Error("embeddings reported for the wrong language")
	}
}

func TestCosineSimilarity_Degenerate(t *testing.T) {
	if got := CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}); got != 0 {
		t.Errorf("mismatched dimensions scored %f, want 0", got)
	}
	if got := CosineSimilarity([]float32{0, 0}, []float32{1, 0}); got != 0 {
		t.Errorf("zero-norm vector scored %f, want 0", got)
	}
	if got := CosineSimilarity([]float32{1, 0}, []float32{1, 0}); got < 0.999 {
		t.Errorf("identical vectors scored %f, want ~1", got)
	}
}
