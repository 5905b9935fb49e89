package knowledgeModel

import (
	"context"
	"strings"
	"time"
)

type ContentType string

const (
	ContentDescription   ContentType = "description"
	ContentHistory       ContentType = "history"
	ContentLegend        ContentType = "legend"
	ContentStory         ContentType = "story"
	ContentPracticalInfo ContentType = "practical_info"
	ContentEvent         ContentType = "event"
	ContentFood          ContentType = "food"
	ContentNature        ContentType = "nature"
)

// Passage is one retrievable unit of knowledge-base text. Immutable after
// insert except for re-embedding; never deleted in normal operation.
type Passage struct {
	Id          string      `json:"id"`
	MonumentId  string      `json:"monument_id,omitempty"` //soft join resolved from Location at ingest time
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	ContentType ContentType `json:"content_type"`
	Category    string      `json:"category"`
	Location    string      `json:"location,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Language    string      `json:"language"`

	// Embedding is either nil or exactly the provider's dimensionality.
	// EmbeddingModel records which model produced it - vectors from
	// different models are never compared against each other.
	Embedding      []float32 `json:"embedding,omitempty"`
	EmbeddingModel string    `json:"embedding_model,omitempty"`

	WordCount      int    `json:"word_count"` //derived from Content, not client input
	SourceDocument string `json:"source_document,omitempty"`
	SourcePage     int    `json:"source_page,omitempty"`
	ChunkIndex     int    `json:"chunk_index"`
}

// CountWords fills the derived WordCount field.
func (p *Passage) CountWords() {
	p.WordCount = len(strings.Fields(p.Content))
}

type ScoredPassage struct {
	Passage Passage `json:"passage"`
	Score   float32 `json:"score"` //0 on the keyword path - no fake ranking confidence
}

type SearchFilters struct {
	Category    string
	MonumentId  string
	ContentType string
	Language    string

	// EmbeddingModel restricts the semantic path to vectors produced by one
	// model - similarity across embedding spaces is meaningless.
	EmbeddingModel string
}

/// MatchesKeyword is the keyword-fallback predicate: case-insensitive
// substring match against title and content. No length floor, no ranking.
func MatchesKeyword(passage Passage, query string) bool {
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(passage.Title), needle) ||
		strings.Contains(strings.ToLower(passage.Content), needle)
}

type Monument struct {
	Id         string   `json:"id"`
	NameIt     string   `json:"name_it"`
	NameEn     string   `json:"name_en,omitempty"`
	NameEs     string   `json:"name_es,omitempty"`
	Slug       string   `json:"slug"` //unique, derived from NameIt
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	IsFeatured bool     `json:"is_featured"`
}

// Slugify derives the lookup slug the same way the location field gets
/// matched at ingest time: lowercase, whitespace runs collapsed to "-".
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentProcessing DocumentStatus = "processing"
	DocumentCompleted  DocumentStatus = "completed"
	DocumentFailed     DocumentStatus = "failed"
)

// UploadedDocument doubles as the ingest job record. pending -> processing
// -> completed|failed, terminal states are final for a given upload.
type UploadedDocument struct {
	Id            string         `json:"id"`
	UserId        string         `json:"user_id,omitempty"`
	Filename      string         `json:"filename"`
	FileType      string         `json:"file_type"`
	FileSize      int64          `json:"file_size"`
	Status        DocumentStatus `json:"status"`
	ChunksCreated int            `json:"chunks_created"`
	ChunksFailed  int            `json:"chunks_failed,omitempty"`
	ErrorMessage  string         `json:"error_message,omitempty"`
	UploadedAt    time.Time      `json:"uploaded_at"`
	ProcessedAt   time.Time      `json:"processed_at,omitempty"`
}

type KnowledgeStore interface {
	InsertPassage(ctx context.Context, passage Passage) (string, error)
	SemanticSearch(ctx context.Context, embedding []float32, threshold float32, limit int, filters SearchFilters) ([]ScoredPassage, error)
	KeywordSearch(ctx context.Context, query string, limit int, filters SearchFilters) ([]Passage, error)

	// HasEmbeddings reports whether any passage in the given language carries
	// a vector produced by the given model. Decides semantic vs keyword search.
	HasEmbeddings(ctx context.Context, language string, model string) (bool, error)
}

type DocumentStore interface {
	SaveDocument(ctx context.Context, document UploadedDocument) error
	GetDocument(ctx context.Context, id string) (UploadedDocument, bool)
}

type MonumentStore interface {
	InsertMonument(ctx context.Context, monument Monument) (string, error)
	GetMonumentBySlug(ctx context.Context, slug string) (Monument, bool)
}

/// IngestJob is what travels over the worker channel: the document record id
// plus where the uploaded bytes were parked.
type IngestJob struct {
	DocumentId   string `json:"document_id"`
	TraceId      string `json:"trace_id"`
	FilePath     string `json:"file_path"`
	MaxChunkSize int    `json:"max_chunk_size"`

	// metadata every passage from this upload inherits
	Title       string `json:"title,omitempty"`
	Category    string `json:"category,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	MonumentId  string `json:"monument_id,omitempty"`
	Language    string `json:"language,omitempty"`
}
