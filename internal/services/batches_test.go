package services

import (
	"testing"

	"github.com/google/uuid"

	"hragents/resume-screener/internal/models"
)

func TestBatchRegistryLifecycle(t *testing.T) {
	registry := NewBatchRegistry()

	docID := uuid.New()
	batch := registry.Create("Go developer", []uuid.UUID{docID})

	if batch.Status != models.BatchQueued {
		t.Fatalf("expected queued batch, got %s", batch.Status)
	}
	if batch.TotalDocuments != 1 {
		t.Fatalf("expected 1 total document, got %d", batch.TotalDocuments)
	}

	registry.MarkProcessing(batch.ID)
	registry.AppendResult(batch.ID, models.ScreeningResult{ResumeName: "jane.pdf"})
	registry.MarkCompleted(batch.ID)

	got, ok := registry.Get(batch.ID)
	if !ok {
		t.Fatalf("batch not found")
	}
	if got.Status != models.BatchCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatalf("expected completion time to be set")
	}
	if got.Processed != 1 || len(got.Results) != 1 {
		t.Fatalf("unexpected batch state: %+v", got)
	}
}

func TestBatchRegistryGetUnknown(t *testing.T) {
	registry := NewBatchRegistry()
	if _, ok := registry.Get(uuid.New()); ok {
		t.Fatalf("expected unknown batch to be absent")
	}
}

// Get hands out snapshots: mutating a returned batch must not leak back
// into the registry.
func TestBatchRegistrySnapshotIsolation(t *testing.T) {
	registry := NewBatchRegistry()
	batch := registry.Create("job", []uuid.UUID{uuid.New()})

	registry.AppendResult(batch.ID, models.ScreeningResult{ResumeName: "a.pdf"})

	snap, _ := registry.Get(batch.ID)
	snap.Results[0].ResumeName = "tampered.pdf"
	snap.Warnings = append(snap.Warnings, "tampered")

	fresh, _ := registry.Get(batch.ID)
	if fresh.Results[0].ResumeName != "a.pdf" {
		t.Fatalf("snapshot mutation leaked into registry: %+v", fresh.Results)
	}
	if len(fresh.Warnings) != 0 {
		t.Fatalf("snapshot append leaked into registry: %v", fresh.Warnings)
	}
}
