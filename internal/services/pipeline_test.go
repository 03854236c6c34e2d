package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hragents/resume-screener/internal/models"
)

// routingGenerator answers structuring and scoring prompts differently, like
// the live oracle would.
type routingGenerator struct {
	structureReply string
	structureErr   error
	scoreReply     string
	scoreErr       error
}

func (r *routingGenerator) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	if strings.Contains(prompt, "resume parser") {
		return r.structureReply, r.structureErr
	}
	return r.scoreReply, r.scoreErr
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(_ *models.Document) (string, error) {
	return s.text, s.err
}

type memoryResultRepo struct {
	rows    []models.ScreeningResult
	failing bool
}

func (m *memoryResultRepo) Create(result *models.ScreeningResult) error {
	if m.failing {
		return errors.New("connection refused")
	}
	m.rows = append(m.rows, *result)
	return nil
}

func (m *memoryResultRepo) FindAll() ([]models.ScreeningResult, error) {
	return m.rows, nil
}

func newTestPipeline(extractor ExtractorService, generator TextGenerator, repo *memoryResultRepo) PipelineService {
	return NewPipelineService(
		extractor,
		NewStructurerService(generator),
		NewScorerService(generator),
		repo,
	)
}

func TestPipelineEndToEnd(t *testing.T) {
	generator := &routingGenerator{
		structureReply: janeJSON,
		scoreReply:     "Score: 85",
	}
	extractor := &stubExtractor{text: "Jane Doe, jane@x.com, Python, 5 yrs"}
	repo := &memoryResultRepo{}
	pipeline := newTestPipeline(extractor, generator, repo)

	doc := &models.Document{OriginalFileName: "jane.pdf", FileType: models.DocumentTypePDF}

	result, warning, failure := pipeline.ProcessDocument(context.Background(), doc, "Python developer")
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if warning != "" {
		t.Fatalf("unexpected warning: %s", warning)
	}

	if result.ResumeName != "jane.pdf" {
		t.Fatalf("unexpected resume name: %q", result.ResumeName)
	}
	if result.JobMatchScore != 85 {
		t.Fatalf("expected score 85, got %d", result.JobMatchScore)
	}
	if result.Category != CategoryHighFit {
		t.Fatalf("expected %q, got %q", CategoryHighFit, result.Category)
	}
	if result.Decision != DecisionInterview {
		t.Fatalf("expected %q, got %q", DecisionInterview, result.Decision)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected one persisted row, got %d", len(repo.rows))
	}
	if result.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
}

// With a fixed oracle, two runs over the same document produce identical
// rows apart from identifier and timestamp.
func TestPipelineDeterministic(t *testing.T) {
	generator := &routingGenerator{structureReply: janeJSON, scoreReply: "72"}
	extractor := &stubExtractor{text: "Jane Doe resume text"}
	repo := &memoryResultRepo{}
	pipeline := newTestPipeline(extractor, generator, repo)

	doc := &models.Document{OriginalFileName: "jane.docx", FileType: models.DocumentTypeDOCX}

	first, _, failure := pipeline.ProcessDocument(context.Background(), doc, "Go developer")
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	second, _, failure := pipeline.ProcessDocument(context.Background(), doc, "Go developer")
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}

	if first.ResumeName != second.ResumeName ||
		first.JobMatchScore != second.JobMatchScore ||
		first.Category != second.Category ||
		first.Decision != second.Decision {
		t.Fatalf("runs differ: %+v vs %+v", first, second)
	}
}

func TestPipelineExtractionFailure(t *testing.T) {
	generator := &routingGenerator{structureReply: janeJSON, scoreReply: "85"}
	extractor := &stubExtractor{err: ErrNoText}
	repo := &memoryResultRepo{}
	pipeline := newTestPipeline(extractor, generator, repo)

	doc := &models.Document{OriginalFileName: "blank.pdf", FileType: models.DocumentTypePDF}

	result, _, failure := pipeline.ProcessDocument(context.Background(), doc, "Go developer")
	if result != nil {
		t.Fatalf("expected no result, got %+v", result)
	}
	if failure == nil {
		t.Fatalf("expected a failure marker")
	}
	if failure.Stage != StageExtracting {
		t.Fatalf("expected stage %q, got %q", StageExtracting, failure.Stage)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("expected no persisted rows, got %d", len(repo.rows))
	}
}

func TestPipelineStructuringFailureCarriesPreview(t *testing.T) {
	longText := strings.Repeat("x", 1500)
	generator := &routingGenerator{structureErr: errors.New("oracle down")}
	extractor := &stubExtractor{text: longText}
	repo := &memoryResultRepo{}
	pipeline := newTestPipeline(extractor, generator, repo)

	doc := &models.Document{OriginalFileName: "long.pdf", FileType: models.DocumentTypePDF}

	_, _, failure := pipeline.ProcessDocument(context.Background(), doc, "Go developer")
	if failure == nil {
		t.Fatalf("expected a failure marker")
	}
	if failure.Stage != StageStructuring {
		t.Fatalf("expected stage %q, got %q", StageStructuring, failure.Stage)
	}

	wantPreview := strings.Repeat("x", 1000) + "..."
	if failure.RawTextPreview != wantPreview {
		t.Fatalf("preview length %d, want %d", len(failure.RawTextPreview), len(wantPreview))
	}
}

// Scoring failures degrade to the sentinel rather than failing the document.
func TestPipelineScoringDegradesSoft(t *testing.T) {
	generator := &routingGenerator{structureReply: janeJSON, scoreErr: errors.New("oracle down")}
	extractor := &stubExtractor{text: "Jane Doe resume text"}
	repo := &memoryResultRepo{}
	pipeline := newTestPipeline(extractor, generator, repo)

	doc := &models.Document{OriginalFileName: "jane.pdf", FileType: models.DocumentTypePDF}

	result, _, failure := pipeline.ProcessDocument(context.Background(), doc, "Go developer")
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if result.JobMatchScore != FailedScore {
		t.Fatalf("expected sentinel score, got %d", result.JobMatchScore)
	}
	if result.Category != CategoryUnderfit {
		t.Fatalf("expected %q, got %q", CategoryUnderfit, result.Category)
	}
	if result.Decision != DecisionReject {
		t.Fatalf("expected %q, got %q", DecisionReject, result.Decision)
	}
}

// A failed insert loses the durable copy only: the row is still returned for
// the batch summary, with a warning.
func TestPipelinePersistenceFailureKeepsRow(t *testing.T) {
	generator := &routingGenerator{structureReply: janeJSON, scoreReply: "85"}
	extractor := &stubExtractor{text: "Jane Doe resume text"}
	repo := &memoryResultRepo{failing: true}
	pipeline := newTestPipeline(extractor, generator, repo)

	doc := &models.Document{OriginalFileName: "jane.pdf", FileType: models.DocumentTypePDF}

	result, warning, failure := pipeline.ProcessDocument(context.Background(), doc, "Go developer")
	if failure != nil {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if result == nil {
		t.Fatalf("expected a result row despite persistence failure")
	}
	if warning == "" {
		t.Fatalf("expected a persistence warning")
	}
	if !strings.Contains(warning, "jane.pdf") {
		t.Fatalf("expected warning to name the document: %s", warning)
	}
}
