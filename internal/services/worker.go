package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"hragents/resume-screener/internal/models"
	"hragents/resume-screener/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueBatch(batchID uuid.UUID)
}

type worker struct {
	registry    BatchRegistry
	docRepo     repositories.DocumentRepository
	pipeline    PipelineService
	batchQueue  chan uuid.UUID
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewWorker(
	registry BatchRegistry,
	docRepo repositories.DocumentRepository,
	pipeline PipelineService,
	concurrency int,
) Worker {
	return &worker{
		registry:    registry,
		docRepo:     docRepo,
		pipeline:    pipeline,
		batchQueue:  make(chan uuid.UUID, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processBatches(ctx, i+1)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueBatch implements Worker.
func (w *worker) EnqueueBatch(batchID uuid.UUID) {
	select {
	case w.batchQueue <- batchID:
		log.Printf("📥 Batch %s enqueued\n", batchID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue batch %s\n", batchID)
	}
}

func (w *worker) processBatches(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case batchID := <-w.batchQueue:
			log.Printf("👷 Worker #%d processing batch %s\n", workerID, batchID)
			w.processBatch(ctx, batchID)
			log.Printf("✅ Worker #%d completed batch %s\n", workerID, batchID)
		}
	}
}

// processBatch runs every document of a batch through the pipeline, strictly
// one at a time and each to full completion. A failed document is recorded
// and the next one proceeds regardless.
func (w *worker) processBatch(ctx context.Context, batchID uuid.UUID) {
	batch, ok := w.registry.Get(batchID)
	if !ok {
		log.Printf("⚠️  Batch %s not found in registry\n", batchID)
		return
	}

	w.registry.MarkProcessing(batchID)

	docs, err := w.docRepo.FindByIDs(batch.DocumentIDs)
	if err != nil {
		log.Printf("⚠️  Failed to load documents for batch %s: %v\n", batchID, err)
		docs = nil
	}

	docsByID := make(map[uuid.UUID]*models.Document, len(docs))
	for i := range docs {
		docsByID[docs[i].ID] = &docs[i]
	}

	// Preserve upload order; FindByIDs does not guarantee it.
	for _, docID := range batch.DocumentIDs {
		doc, ok := docsByID[docID]
		if !ok {
			w.registry.AppendFailure(batchID, models.FailedDocument{
				ResumeName: docID.String(),
				Stage:      StageExtracting,
				Error:      "document record not found",
			})
			continue
		}

		result, warning, failure := w.pipeline.ProcessDocument(ctx, doc, batch.JobDescription)
		if failure != nil {
			w.registry.AppendFailure(batchID, *failure)
			continue
		}

		w.registry.AppendResult(batchID, *result)
		if warning != "" {
			w.registry.AppendWarning(batchID, warning)
		}
	}

	w.registry.MarkCompleted(batchID)
}
