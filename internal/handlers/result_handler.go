package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hragents/resume-screener/internal/models"
	"hragents/resume-screener/internal/repositories"
)

type ResultHandler struct {
	resultRepo repositories.ResultRepository
}

func NewResultHandler(resultRepo repositories.ResultRepository) *ResultHandler {
	return &ResultHandler{
		resultRepo: resultRepo,
	}
}

// HandleListResults handles GET /results, returning every durably persisted
// screening row, newest first.
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	results, err := h.resultRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list screening results",
		})
	}

	return c.JSON(models.ResultsResponse{
		Count:   len(results),
		Results: results,
	})
}
