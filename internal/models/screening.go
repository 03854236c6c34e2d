package models

import (
	"time"

	"github.com/google/uuid"
)

type BatchStatus string

const (
	BatchQueued     BatchStatus = "queued"
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
)

// FailedDocument records why a resume was excluded from the batch summary.
// RawTextPreview carries up to the first 1000 characters of whatever text
// was extracted, so the operator can see what the oracle was given.
type FailedDocument struct {
	ResumeName     string `json:"resume_name"`
	Stage          string `json:"stage"`
	Error          string `json:"error"`
	RawTextPreview string `json:"raw_text_preview,omitempty"`
}

// Batch is the in-memory state of one screening run. Results and failures
// live here even when a database insert fails, so the summary and CSV
// export always reflect what was actually processed.
type Batch struct {
	ID             uuid.UUID         `json:"id"`
	JobDescription string            `json:"-"`
	DocumentIDs    []uuid.UUID       `json:"-"`
	Status         BatchStatus       `json:"status"`
	TotalDocuments int               `json:"total_documents"`
	Processed      int               `json:"processed"`
	Results        []ScreeningResult `json:"results"`
	Failures       []FailedDocument  `json:"failures"`
	Warnings       []string          `json:"warnings,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
}

type ScreenResponse struct {
	ID        string   `json:"id"`
	Status    string   `json:"status"`
	Documents int      `json:"documents"`
	Skipped   []string `json:"skipped,omitempty"`
}

type ResultsResponse struct {
	Count   int               `json:"count"`
	Results []ScreeningResult `json:"results"`
}
