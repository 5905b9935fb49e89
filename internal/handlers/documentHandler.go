package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/adapter"
	"github.com/avitale/VillageGuideAPI/internal/adapter/utils"
	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/internal/metrics"
)

// UploadDocumentHandler handles the uploading of PDF or DOCX documents for knowledge ingestion.
// @Summary      Upload a document for ingestion
// @Description  Receives a file via multipart/form-data, saves it to a temporary directory, and queues an ingestion job. Track progress at the returned status URL.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        document       formData  file    true   "The PDF, DOCX or text file to upload"
// @Param        title          formData  string  false  "Display title for the passages"
// @Param        category       formData  string  false  "Knowledge category"
// @Param        content_type   formData  string  false  "Content type (description, history, legend, ...)"
// @Param        monument_id    formData  string  false  "Monument the content belongs to"
// @Param        language       formData  string  false  "Language of the document content"
// @Param        max_chunk_size formData  int     false  "Chunk size ceiling in characters"
// @Success      202  {object}  api.UploadAcceptedResponse "Accepted - returns document_id"
// @Failure      400  {object}  api.ErrorResponse "Bad Request - Missing file or file too large"
// @Failure      500  {object}  api.ErrorResponse "Internal Server Error - Storage or Write Error"
// @Router       /documents [post]
func UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory :", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, fileMetadata.Filename, "Storage error")
		return
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, fileMetadata.Filename, "Write error")
		return
	}

	document := knowledgeModel.UploadedDocument{
		Id:         utils.GetNewUUID(),
		UserId:     r.FormValue("user_id"),
		Filename:   fileMetadata.Filename,
		FileType:   filepath.Ext(fileMetadata.Filename),
		FileSize:   fileMetadata.Size,
		Status:     knowledgeModel.DocumentPending,
		UploadedAt: time.Now(),
	}
	if err := handlerInstance.documents.SaveDocument(r.Context(), document); err != nil {
		logRH.Error("Failed saving document record", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, document.Id, "Storage error")
		return
	}

	maxChunkSize, _ := strconv.Atoi(r.FormValue("max_chunk_size"))
	job := knowledgeModel.IngestJob{
		DocumentId:   document.Id,
		TraceId:      r.Context().Value(config.TRACE_ID_KEY).(string),
		FilePath:     tempFilePath,
		MaxChunkSize: maxChunkSize,
		Title:        r.FormValue("title"),
		Category:     r.FormValue("category"),
		ContentType:  r.FormValue("content_type"),
		MonumentId:   r.FormValue("monument_id"),
		Language:     r.FormValue("language"),
	}
	handlerInstance.pushToJobChannel(job)

	writeJsonResponse(w, http.StatusAccepted, adapter.ToUploadAcceptedResponse(document.Id))
}

// GetDocumentStatusHandler godoc
// @Summary      Get ingestion status of an uploaded document
// @Tags         Documents
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  api.DocumentStatusResponse
// @Failure      404  {object}  api.ErrorResponse "Document not found"
// @Router       /documents/{id} [get]
func GetDocumentStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	id := utils.GetChiURLParam(r, "id")
	document, found := handlerInstance.documents.GetDocument(r.Context(), id)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, id, "Document not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentStatusResponse(document))
}

// private methods
func (h *GuideHandler) pushToJobChannel(job knowledgeModel.IngestJob) {
	//metrics
	metrics.IncrementIngestJobsInQueue()

	h.ingestService.JobChannel <- job //this is a blocking send to prevent the system from being overwhelmed
	logRH.Info("Queued ingest job", "documentId", job.DocumentId)

	//ingestion might take a while - external system calls per chunk
	//so every ingest job nudges the dispatcher; idle workers retire on their own
	atomic.AddInt64(&h.ingestService.RequestCount, 1)
	metrics.StartDispatcherSignalCount() //metrics
	h.ingestService.DispatcherChannel <- true
}
