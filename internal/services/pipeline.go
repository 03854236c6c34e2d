package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"hragents/resume-screener/internal/models"
	"hragents/resume-screener/internal/repositories"
)

// Pipeline stage names as reported in failure diagnostics.
const (
	StageExtracting  = "extracting"
	StageStructuring = "structuring"
	StageScoring     = "scoring"
	StagePersisting  = "persisting"
)

// rawTextPreviewLimit caps the extracted-text preview attached to failure
// diagnostics.
const rawTextPreviewLimit = 1000

type PipelineService interface {
	// ProcessDocument runs one resume through extract, structure, score,
	// categorize, decide and persist. Exactly one of result and failure is
	// non-nil. A non-empty warning means the row was produced but its
	// database insert failed; the row is still valid session data.
	ProcessDocument(ctx context.Context, doc *models.Document, jobDescription string) (result *models.ScreeningResult, warning string, failure *models.FailedDocument)
}

type pipelineService struct {
	extractor  ExtractorService
	structurer StructurerService
	scorer     ScorerService
	resultRepo repositories.ResultRepository
}

func NewPipelineService(
	extractor ExtractorService,
	structurer StructurerService,
	scorer ScorerService,
	resultRepo repositories.ResultRepository,
) PipelineService {
	return &pipelineService{
		extractor:  extractor,
		structurer: structurer,
		scorer:     scorer,
		resultRepo: resultRepo,
	}
}

func (p *pipelineService) ProcessDocument(ctx context.Context, doc *models.Document, jobDescription string) (*models.ScreeningResult, string, *models.FailedDocument) {
	name := doc.OriginalFileName
	log.Printf("📄 Processing %s...\n", name)

	// Step 1: extract text
	text, err := p.extractor.ExtractText(doc)
	if err != nil {
		log.Printf("❌ %s: extraction failed: %v\n", name, err)
		return nil, "", &models.FailedDocument{
			ResumeName: name,
			Stage:      StageExtracting,
			Error:      err.Error(),
		}
	}

	// Step 2: structure the resume
	resume, err := p.structurer.Structure(ctx, text)
	if err != nil {
		log.Printf("❌ %s: structuring failed: %v\n", name, err)
		return nil, "", &models.FailedDocument{
			ResumeName:     name,
			Stage:          StageStructuring,
			Error:          err.Error(),
			RawTextPreview: previewText(text, rawTextPreviewLimit),
		}
	}
	log.Printf("✅ %s: resume data extracted\n", name)

	// Step 3: score against the job description. Scoring fails soft, so
	// from here on the document always yields a row.
	score := p.scorer.Score(ctx, resume, jobDescription)
	log.Printf("✅ %s: job match score: %d\n", name, score)

	// Step 4: categorize
	category := Categorize(strconv.Itoa(score))
	log.Printf("✅ %s: category: %s\n", name, category)

	// Step 5: decide
	decision := Decide(category)
	log.Printf("✅ %s: decision: %s\n", name, decision)

	row := &models.ScreeningResult{
		ID:            uuid.New(),
		ResumeName:    name,
		JobMatchScore: score,
		Category:      category,
		Decision:      decision,
		Timestamp:     time.Now(),
	}

	// Step 6: persist, best-effort. A failed insert loses the durable copy
	// only; the row stays in the batch summary and export.
	var warning string
	if err := p.resultRepo.Create(row); err != nil {
		warning = fmt.Sprintf("failed to save result for %s: %v", name, err)
		log.Printf("⚠️  %s\n", warning)
	}

	return row, warning, nil
}

func previewText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
