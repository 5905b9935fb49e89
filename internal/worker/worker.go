package worker

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/ingestjob"
	"github.com/avitale/VillageGuideAPI/internal/metrics"
	"github.com/avitale/VillageGuideAPI/internal/rag/ingest"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

var (
	_jobService        *ingestjob.Service
	_pipeline          ingest.Pipeline
	stopWorkerChannel  chan bool
	workerWaitGroup    *sync.WaitGroup
	dispatcherChannel  chan bool
	currentWorkerCount int64
	logger             *logger_i.Logger
	minWorkerCount     = config.MinWorkerCount
)

func InitServices(jobService *ingestjob.Service, pipeline ingest.Pipeline) {
	_jobService = jobService
	_pipeline = pipeline
	dispatcherChannel = jobService.DispatcherChannel
}

func InitWorkerPool(stopWorkerChan chan bool, waitGroup *sync.WaitGroup) {
	stopWorkerChannel = stopWorkerChan
	workerWaitGroup = waitGroup
	logger = logger_i.NewLogger("WorkerPool")
	logger.Info("Initializing worker pool")
	go dispatcher()
}

func dispatcher() {
	createWorker()
	logger.Info("Dispatcher started")
	for range dispatcherChannel {
		if atomic.LoadInt64(&currentWorkerCount) < config.MaxWorkerCount {
			logger.Info("Creating new worker", "WorkerCount :", currentWorkerCount)
			createWorker()
		}
	}
}

func createWorker() {
	workerWaitGroup.Add(1)
	go worker()
	atomic.AddInt64(&currentWorkerCount, 1)
	metrics.IncrementActiveWorkerCount()
	logger.Info("Created new worker")
}

func worker() {
	for {
		select {
		case currentJob := <-_jobService.JobChannel:
			executeJob(currentJob)
			metrics.DecrementIngestJobsInQueue()

		case <-stopWorkerChannel:
			removeWorker("Stop worker signal received")
			return

		case <-time.After(config.IdleWorkerTimeout):
			// idle too long, retire unless we are the floor
			if atomic.LoadInt64(&minWorkerCount) > 1 {
				removeWorker("Idle worker timeout - Removed worker")
				return
			}
		}
	}
}
