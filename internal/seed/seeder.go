package seed

import (
	"context"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/embedding"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("Seeder ")

// Catalog is the slice of the catalog store the seeder writes to.
type Catalog interface {
	knowledgeModel.MonumentStore
	SavePersona(ctx context.Context, persona chatModel.Persona) error
}

type Summary struct {
	Monuments int
	Personas  int
	Passages  int
	Embedded  int
	Failed    int
}

type Seeder struct {
	catalog   Catalog
	knowledge knowledgeModel.KnowledgeStore
	embedder  embedding.Embedder
}

// NewSeeder wires the seeder. A nil embedder loads the corpus without
// vectors, leaving retrieval on the keyword fallback until a proper
// embedding run happens.
func NewSeeder(catalog Catalog, knowledge knowledgeModel.KnowledgeStore, embedder embedding.Embedder) *Seeder {
	return &Seeder{
		catalog:   catalog,
		knowledge: knowledge,
		embedder:  embedder,
	}
}

// Run loads monuments first, then personas, then passages. Passages
// soft-join to monuments by slugifying their location. Failures are
// logged and counted, never fatal, so a partial corpus still serves.
func (s *Seeder) Run(ctx context.Context) Summary {
	var summary Summary

	for _, monument := range monuments {
		if _, err := s.catalog.InsertMonument(ctx, monument); err != nil {
			logger.Error("failed to insert monument", "slug", monument.Slug, "error", err)
			summary.Failed++
			continue
		}
		summary.Monuments++
	}

	for _, persona := range personas {
		if err := s.catalog.SavePersona(ctx, persona); err != nil {
			logger.Error("failed to save persona", "persona", persona.Id, "error", err)
			summary.Failed++
			continue
		}
		summary.Personas++
	}

	for _, passage := range passages {
		passage.Language = config.CorpusLanguage
		passage.CountWords()
		if monument, found := s.catalog.GetMonumentBySlug(ctx, knowledgeModel.Slugify(passage.Location)); found {
			passage.MonumentId = monument.Id
		}

		if s.embedder != nil {
			vector, err := s.embedder.EmbedText(ctx, passage.Title+"\n\n"+passage.Content)
			if err != nil {
				// stored anyway, keyword search still finds it
				logger.Warn("failed to embed passage", "title", passage.Title, "error", err)
			} else {
				passage.Embedding = vector
				passage.EmbeddingModel = s.embedder.ModelID()
				summary.Embedded++
			}
		}

		if _, err := s.knowledge.InsertPassage(ctx, passage); err != nil {
			logger.Error("failed to insert passage", "title", passage.Title, "error", err)
			summary.Failed++
			continue
		}
		summary.Passages++
	}

	logger.Info("corpus loaded",
		"monuments", summary.Monuments,
		"personas", summary.Personas,
		"passages", summary.Passages,
		"embedded", summary.Embedded,
		"failed", summary.Failed)
	return summary
}
