package worker

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/metrics"
	"github.com/avitale/VillageGuideAPI/internal/rag/ingest"
)

func executeJob(job knowledgeModel.IngestJob) {
	start := time.Now()
	status := "completed"
	defer func() {
		metrics.CaptureIngestMetrics(status, time.Since(start))
	}()

	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.IngestJobTimeout)
	defer cancel()

	logger.Debug("Processing ingest job", "document Id:", job.DocumentId)

	document, found := _jobService.DocumentStore.GetDocument(ctx, job.DocumentId)
	if !found {
		logger.Error("Document record vanished before processing", "documentId", job.DocumentId)
		status = "failed"
		return
	}

	document.Status = knowledgeModel.DocumentProcessing
	saveDocumentState(ctx, document)

	report, err := _pipeline.IngestFile(ctx, job.FilePath, metaFromJob(job), job.MaxChunkSize)

	document.ProcessedAt = time.Now()
	document.ChunksCreated = report.ChunksCreated
	document.ChunksFailed = report.ChunksFailed

	switch {
	case err != nil:
		document.Status = knowledgeModel.DocumentFailed
		document.ErrorMessage = err.Error()
		status = "failed"
	case report.ChunksCreated == 0:
		// every chunk failed, nothing searchable came out of the upload
		document.Status = knowledgeModel.DocumentFailed
		document.ErrorMessage = "no chunks could be ingested"
		status = "failed"
	default:
		document.Status = knowledgeModel.DocumentCompleted
	}
	saveDocumentState(ctx, document)

	if err := os.Remove(job.FilePath); err != nil {
		logger.Error("Error removing uploaded file", "error", err)
	}
}

func metaFromJob(job knowledgeModel.IngestJob) ingest.PassageMeta {
	language := job.Language
	if language == "" {
		language = config.CorpusLanguage
	}
	return ingest.PassageMeta{
		Title:       job.Title,
		Category:    job.Category,
		ContentType: knowledgeModel.ContentType(job.ContentType),
		MonumentId:  job.MonumentId,
		Language:    language,
	}
}

func saveDocumentState(ctx context.Context, document knowledgeModel.UploadedDocument) {
	if err := _jobService.DocumentStore.SaveDocument(ctx, document); err != nil {
		logger.Error("Failed to update document status", "err", err)
	}
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()
}
