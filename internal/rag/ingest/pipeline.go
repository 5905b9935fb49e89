package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/rag/embedding"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

var logger = logger_i.NewLogger("Document Ingestion ")

// PassageMeta is what every chunk of one source document inherits.
type PassageMeta struct {
	Title          string
	Category       string
	ContentType    knowledgeModel.ContentType
	MonumentId     string
	Location       string
	Tags           []string
	Language       string
	SourceDocument string
}

type ChunkOutcome struct {
	Index     int    `json:"index"`
	PassageId string `json:"passage_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report sums one ingestion run. Created and Failed never overlap, a chunk
// lands in exactly one of them.
type Report struct {
	ChunksCreated int            `json:"chunks_created"`
	ChunksFailed  int            `json:"chunks_failed"`
	PerChunk      []ChunkOutcome `json:"per_chunk,omitempty"`
}

// Pipeline turns source text into embedded, stored knowledge passages.
// Failed chunks are skipped, not retried, and the rest of the document
// still goes in. A re-upload of the same document is the recovery path.
type Pipeline interface {
	IngestText(ctx context.Context, text string, meta PassageMeta, maxChunkSize int) Report
	IngestFile(ctx context.Context, path string, meta PassageMeta, maxChunkSize int) (Report, error)
}

type pipeline struct {
	store    knowledgeModel.KnowledgeStore
	embedder embedding.Embedder
}

func NewPipeline(store knowledgeModel.KnowledgeStore, embedder embedding.Embedder) Pipeline {
	return &pipeline{store: store, embedder: embedder}
}

func (p *pipeline) IngestText(ctx context.Context, text string, meta PassageMeta, maxChunkSize int) Report {
	return p.ingestPage(ctx, rawPage{Number: 0, Content: text}, meta, maxChunkSize, 0)
}

// IngestFile extracts the document at path and ingests it page by page.
// The returned error covers extraction only; per-chunk failures live in
// the Report.
func (p *pipeline) IngestFile(ctx context.Context, path string, meta PassageMeta, maxChunkSize int) (Report, error) {
	log := logger.WithTrace(ctx)
	log.Debug("processing document", "path", path)

	pages, err := extractText(path)
	if err != nil {
		return Report{}, err
	}

	var hasText bool
	for _, page := range pages {
		if strings.TrimSpace(page.Content) != "" {
			hasText = true
			break
		}
	}
	if !hasText {
		return Report{}, fmt.Errorf("no extractable text in %s", filepath.Base(path))
	}

	if meta.SourceDocument == "" {
		meta.SourceDocument = filepath.Base(path)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	var total Report
	chunkOffset := 0
	for _, page := range pages {
		pageReport := p.ingestPage(ctx, page, meta, maxChunkSize, chunkOffset)
		total.ChunksCreated += pageReport.ChunksCreated
		total.ChunksFailed += pageReport.ChunksFailed
		total.PerChunk = append(total.PerChunk, pageReport.PerChunk...)
		chunkOffset += len(pageReport.PerChunk)
	}

	log.Info("document ingested", "source", meta.SourceDocument, "created", total.ChunksCreated, "failed", total.ChunksFailed)
	return total, nil
}

func (p *pipeline) ingestPage(ctx context.Context, page rawPage, meta PassageMeta, maxChunkSize int, chunkOffset int) Report {
	log := logger.WithTrace(ctx)

	var report Report
	for i, chunk := range ChunkText(page.Content, maxChunkSize) {
		index := chunkOffset + i
		outcome := ChunkOutcome{Index: index}

		passage := knowledgeModel.Passage{
			MonumentId:     meta.MonumentId,
			Title:          meta.Title,
			Content:        chunk,
			ContentType:    meta.ContentType,
			Category:       meta.Category,
			Location:       meta.Location,
			Tags:           meta.Tags,
			Language:       meta.Language,
			SourceDocument: meta.SourceDocument,
			SourcePage:     page.Number,
			ChunkIndex:     index,
		}
		passage.CountWords()

		vector, err := p.embedder.EmbedText(ctx, chunk)
		if err != nil {
			log.Error("embedding chunk failed, skipping", "chunk", index, "error", err)
			outcome.Error = err.Error()
			report.ChunksFailed++
			report.PerChunk = append(report.PerChunk, outcome)
			continue
		}
		passage.Embedding = vector
		passage.EmbeddingModel = p.embedder.ModelID()

		id, err := p.store.InsertPassage(ctx, passage)
		if err != nil {
			log.Error("storing chunk failed, skipping", "chunk", index, "error", err)
			outcome.Error = err.Error()
			report.ChunksFailed++
			report.PerChunk = append(report.PerChunk, outcome)
			continue
		}

		outcome.PassageId = id
		report.ChunksCreated++
		report.PerChunk = append(report.PerChunk, outcome)
	}
	return report
}
