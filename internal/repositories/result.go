package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"hragents/resume-screener/internal/models"
)

type ResultRepository interface {
	Create(result *models.ScreeningResult) error
	FindAll() ([]models.ScreeningResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Create appends one row. Inserts are individual and never retried; the
// caller decides what a failure means.
func (r *resultRepository) Create(result *models.ScreeningResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create screening result: %w", err)
	}

	return nil
}

func (r *resultRepository) FindAll() ([]models.ScreeningResult, error) {
	var results []models.ScreeningResult
	if err := r.db.Order("timestamp DESC").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list screening results: %w", err)
	}

	return results, nil
}
