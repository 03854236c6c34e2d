package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"hragents/resume-screener/internal/models"
)

// ExportCSV renders a batch's result rows as a CSV document with the same
// columns as the results table.
func ExportCSV(results []models.ScreeningResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Resume Name", "Job Match Score", "Category", "Decision", "Timestamp"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range results {
		record := []string{
			row.ResumeName,
			strconv.Itoa(row.JobMatchScore),
			row.Category,
			row.Decision,
			row.Timestamp.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportFilename names a download after its capture time.
func ExportFilename(at time.Time) string {
	return fmt.Sprintf("screening_results_%s.csv", at.Format("20060102_150405"))
}
