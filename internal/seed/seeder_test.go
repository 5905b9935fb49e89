package seed

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
)

type mockCatalog struct {
	monuments map[string]knowledgeModel.Monument
	personas  map[string]chatModel.Persona
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		monuments: make(map[string]knowledgeModel.Monument),
		personas:  make(map[string]chatModel.Persona),
	}
}

func (m *mockCatalog) InsertMonument(ctx context.Context, monument knowledgeModel.Monument) (string, error) {
	monument.Id = "id-" + monument.Slug
	m.monuments[monument.Slug] = monument
	return monument.Id, nil
}

func (m *mockCatalog) GetMonumentBySlug(ctx context.Context, slug string) (knowledgeModel.Monument, bool) {
	monument, found := m.monuments[slug]
	return monument, found
}

func (m *mockCatalog) SavePersona(ctx context.Context, persona chatModel.Persona) error {
	m.personas[persona.Id] = persona
	return nil
}

type mockKnowledge struct {
	inserted    []knowledgeModel.Passage
	failOnTitle string
}

func (m *mockKnowledge) InsertPassage(ctx context.Context, passage knowledgeModel.Passage) (string, error) {
	if m.failOnTitle != "" && passage.Title == m.failOnTitle {
		return "", errors.New("qdrant unavailable")
	}
	m.inserted = append(m.inserted, passage)
	return "passage-" + strconv.Itoa(len(m.inserted)), nil
}

func (m *mockKnowledge) SemanticSearch(ctx context.Context, embedding []float32, threshold float32, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
	return nil, nil
}

func (m *mockKnowledge) KeywordSearch(ctx context.Context, query string, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
	return nil, nil
}

func (m *mockKnowledge) HasEmbeddings(ctx context.Context, language string, model string) (bool, error) {
	return len(m.inserted) > 0, nil
}

type mockEmbedder struct {
	calls int
	err   error
}

func (m *mockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.calls++
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *mockEmbedder) ModelID() string {
	return "test-embedding-model"
}

func TestRun_LoadsWholeCorpus(t *testing.T) {
	catalog := newMockCatalog()
	knowledge := &mockKnowledge{}
	embedder := &mockEmbedder{}

	summary := NewSeeder(catalog, knowledge, embedder).Run(context.Background())

	if summary.Monuments != len(monuments) {
		t.Errorf("got %d monuments, want %d", summary.Monuments, len(monuments))
	}
	if summary.Personas != len(personas) {
		t.Errorf("got %d personas, want %d", summary.Personas, len(personas))
	}
	if summary.Passages != len(passages) || summary.Embedded != len(passages) {
		t.Errorf("got %d passages (%d embedded), want %d of each", summary.Passages, summary.Embedded, len(passages))
	}
	if summary.Failed != 0 {
		t.Errorf("got %d failures, want 0", summary.Failed)
	}

	for _, passage := range knowledge.inserted {
		if passage.Language != "it" {
			t.Errorf("passage %q has language %q, want it", passage.Title, passage.Language)
		}
		if passage.WordCount == 0 {
			t.Errorf("passage %q has no word count", passage.Title)
		}
		if len(passage.Embedding) == 0 || passage.EmbeddingModel != "test-embedding-model" {
			t.Errorf("passage %q missing embedding or model tag", passage.Title)
		}
	}
}

func TestRun_PassagesJoinMonumentsByLocationSlug(t *testing.T) {
	catalog := newMockCatalog()
	knowledge := &mockKnowledge{}

	NewSeeder(catalog, knowledge, nil).Run(context.Background())

	var castleStory knowledgeModel.Passage
	for _, passage := range knowledge.inserted {
		if passage.Title == "Castello - Storia Medievale" {
			castleStory = passage
		}
	}
	if castleStory.MonumentId != "id-castello" {
		t.Errorf("castle passage joined to %q, want id-castello", castleStory.MonumentId)
	}
}

func TestRun_SkipEmbeddingsLeavesVectorsEmpty(t *testing.T) {
	catalog := newMockCatalog()
	knowledge := &mockKnowledge{}

	summary := NewSeeder(catalog, knowledge, nil).Run(context.Background())

	if summary.Passages != len(passages) {
		t.Errorf("got %d passages, want %d", summary.Passages, len(passages))
	}
	if summary.Embedded != 0 {
		t.Errorf("got %d embedded, want 0", summary.Embedded)
	}
	for _, passage := range knowledge.inserted {
		if passage.Embedding != nil || passage.EmbeddingModel != "" {
			t.Errorf("passage %q carries a vector in skip-embeddings mode", passage.Title)
		}
	}
}

func TestRun_EmbeddingFailureStillStoresPassage(t *testing.T) {
	catalog := newMockCatalog()
	knowledge := &mockKnowledge{}
	embedder := &mockEmbedder{err: errors.New("rate limited")}

	summary := NewSeeder(catalog, knowledge, embedder).Run(context.Background())

	if summary.Passages != len(passages) {
		t.Errorf("got %d passages, want %d", summary.Passages, len(passages))
	}
	if summary.Embedded != 0 || summary.Failed != 0 {
		t.Errorf("got embedded=%d failed=%d, want 0 and 0", summary.Embedded, summary.Failed)
	}
}

func TestRun_InsertFailureCounted(t *testing.T) {
	catalog := newMockCatalog()
	knowledge := &mockKnowledge{failOnTitle: "Castello - Epoca Orsina"}

	summary := NewSeeder(catalog, knowledge, nil).Run(context.Background())

	if summary.Passages != len(passages)-1 {
		t.Errorf("got %d passages, want %d", summary.Passages, len(passages)-1)
	}
	if summary.Failed != 1 {
		t.Errorf("got %d failures, want 1", summary.Failed)
	}
}
