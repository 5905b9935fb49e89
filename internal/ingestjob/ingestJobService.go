package ingestjob

import (
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
)

// Service carries the ingestion queue plumbing: the job channel the workers
// drain, the dispatcher signal channel, and the document store the workers
// report status into.
type Service struct {
	JobChannel        chan knowledgeModel.IngestJob
	RequestCount      int64
	DispatcherChannel chan bool
	DocumentStore     knowledgeModel.DocumentStore
}

type ServiceConfig struct {
	JobChannel        chan knowledgeModel.IngestJob
	RequestCount      int64
	DispatcherChannel chan bool
	DocumentStore     knowledgeModel.DocumentStore
}

func InitIngestJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel:        cfg.JobChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
		DocumentStore:     cfg.DocumentStore,
	}
}
