package models

import (
	"time"

	"github.com/google/uuid"
)

// ScreeningResult is one row of the append-only results table. Rows are
// created once per successfully screened resume and never updated. There is
// no natural key: re-screening the same file inserts a new row.
type ScreeningResult struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeName    string    `gorm:"type:text" json:"resume_name"`
	JobMatchScore int       `gorm:"type:integer" json:"job_match_score"`
	Category      string    `gorm:"type:text" json:"category"`
	Decision      string    `gorm:"type:text" json:"decision"`
	Timestamp     time.Time `gorm:"type:timestamp" json:"timestamp"`
}

func (ScreeningResult) TableName() string {
	return "resume_results"
}
