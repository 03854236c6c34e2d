package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hragents/resume-screener/internal/models"
)

// BatchRegistry holds the in-memory state of screening runs. Results live
// here, not in the database: a row whose insert failed is still part of its
// batch's summary and export. Reads happen from HTTP handlers while the
// worker writes, hence the lock.
type BatchRegistry interface {
	Create(jobDescription string, docIDs []uuid.UUID) *models.Batch
	Get(id uuid.UUID) (*models.Batch, bool)
	MarkProcessing(id uuid.UUID)
	MarkCompleted(id uuid.UUID)
	AppendResult(id uuid.UUID, row models.ScreeningResult)
	AppendFailure(id uuid.UUID, failure models.FailedDocument)
	AppendWarning(id uuid.UUID, warning string)
}

type batchRegistry struct {
	mu      sync.RWMutex
	batches map[uuid.UUID]*models.Batch
}

func NewBatchRegistry() BatchRegistry {
	return &batchRegistry{
		batches: make(map[uuid.UUID]*models.Batch),
	}
}

func (r *batchRegistry) Create(jobDescription string, docIDs []uuid.UUID) *models.Batch {
	batch := &models.Batch{
		ID:             uuid.New(),
		JobDescription: jobDescription,
		DocumentIDs:    docIDs,
		Status:         models.BatchQueued,
		TotalDocuments: len(docIDs),
		CreatedAt:      time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[batch.ID] = batch

	return copyBatch(batch)
}

// Get returns a snapshot of the batch, safe to use after the lock is
// released.
func (r *batchRegistry) Get(id uuid.UUID) (*models.Batch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	batch, ok := r.batches[id]
	if !ok {
		return nil, false
	}

	return copyBatch(batch), true
}

func (r *batchRegistry) MarkProcessing(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if batch, ok := r.batches[id]; ok {
		batch.Status = models.BatchProcessing
	}
}

func (r *batchRegistry) MarkCompleted(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if batch, ok := r.batches[id]; ok {
		now := time.Now()
		batch.Status = models.BatchCompleted
		batch.CompletedAt = &now
	}
}

func (r *batchRegistry) AppendResult(id uuid.UUID, row models.ScreeningResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if batch, ok := r.batches[id]; ok {
		batch.Results = append(batch.Results, row)
		batch.Processed++
	}
}

func (r *batchRegistry) AppendFailure(id uuid.UUID, failure models.FailedDocument) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if batch, ok := r.batches[id]; ok {
		batch.Failures = append(batch.Failures, failure)
		batch.Processed++
	}
}

func (r *batchRegistry) AppendWarning(id uuid.UUID, warning string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if batch, ok := r.batches[id]; ok {
		batch.Warnings = append(batch.Warnings, warning)
	}
}

func copyBatch(batch *models.Batch) *models.Batch {
	snapshot := *batch
	snapshot.DocumentIDs = append([]uuid.UUID(nil), batch.DocumentIDs...)
	snapshot.Results = append([]models.ScreeningResult(nil), batch.Results...)
	snapshot.Failures = append([]models.FailedDocument(nil), batch.Failures...)
	snapshot.Warnings = append([]string(nil), batch.Warnings...)
	return &snapshot
}
