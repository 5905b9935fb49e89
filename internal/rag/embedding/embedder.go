package embedding

import "context"

type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// ModelID identifies the embedding model. Stored next to every vector so
	// query-time and ingestion-time embeddings are never mixed across models.
	ModelID() string
}
