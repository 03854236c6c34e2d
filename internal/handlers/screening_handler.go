package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hragents/resume-screener/internal/models"
	"hragents/resume-screener/internal/repositories"
	"hragents/resume-screener/internal/services"
)

type ScreeningHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	registry       services.BatchRegistry
	worker         services.Worker
	maxFileSize    int64
}

func NewScreeningHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	registry services.BatchRegistry,
	worker services.Worker,
	maxFileSize int64,
) *ScreeningHandler {
	return &ScreeningHandler{
		docRepo:        docRepo,
		storageService: storageService,
		registry:       registry,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleScreen handles POST /screenings: resumes plus a job description in
// one multipart request. Documents with an unsupported extension are skipped
// with a warning; the rest are queued as one batch.
func (h *ScreeningHandler) HandleScreen(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes uploaded. Please upload 'resumes' as PDF or DOCX files.",
		})
	}

	var docIDs []uuid.UUID
	var skipped []string

	for _, file := range files {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("File %s too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}

		filename, filePath, docType, err := h.storageService.SaveFile(file)
		if err != nil {
			if errors.Is(err, services.ErrUnsupportedFormat) {
				skipped = append(skipped, fmt.Sprintf("unsupported file type for %s", file.Filename))
				continue
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save file %s: %v", file.Filename, err),
			})
		}

		doc := models.Document{
			ID:               uuid.New(),
			Filename:         filename,
			OriginalFileName: file.Filename,
			FileType:         docType,
			FilePath:         filePath,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := h.docRepo.Create(&doc); err != nil {
			// Cleanup uploaded file if database insert fails
			h.storageService.DeleteFile(filename)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save document record: %v", err),
			})
		}

		docIDs = append(docIDs, doc.ID)
	}

	if len(docIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "No valid files uploaded. Please upload 'resumes' as PDF or DOCX files.",
			"skipped": skipped,
		})
	}

	batch := h.registry.Create(jobDescription, docIDs)
	h.worker.EnqueueBatch(batch.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ScreenResponse{
		ID:        batch.ID.String(),
		Status:    string(batch.Status),
		Documents: len(docIDs),
		Skipped:   skipped,
	})
}

// HandleGetScreening handles GET /screenings/:id.
func (h *ScreeningHandler) HandleGetScreening(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	batch, ok := h.registry.Get(batchID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	return c.JSON(batch)
}

// HandleExport handles GET /screenings/:id/export, serving the batch's
// result rows as a downloadable CSV.
func (h *ScreeningHandler) HandleExport(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	batch, ok := h.registry.Get(batchID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	if batch.Status != models.BatchCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Screening is not completed yet",
		})
	}

	data, err := services.ExportCSV(batch.Results)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to export results: %v", err),
		})
	}

	filename := services.ExportFilename(time.Now())
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Send(data)
}
