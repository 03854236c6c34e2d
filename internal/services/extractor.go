package services

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"hragents/resume-screener/internal/models"
)

var (
	// ErrUnsupportedFormat marks a document whose declared type is neither
	// PDF nor DOCX.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNoText marks a document that opened fine but yielded no usable text.
	ErrNoText = errors.New("no text content found in document")
)

type ExtractorService interface {
	ExtractText(doc *models.Document) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText converts an uploaded resume into plain text based on its
// declared type. It never falls back across formats: a .docx that fails to
// open is an extraction failure, not a retry as PDF.
func (e *extractorService) ExtractText(doc *models.Document) (string, error) {
	switch doc.FileType {
	case models.DocumentTypePDF:
		return e.extractPDF(doc.FilePath)
	case models.DocumentTypeDOCX:
		return e.extractDOCX(doc.FilePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, doc.FileType)
	}
}

func (e *extractorService) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages but keep going
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}

// docxDocument mirrors the fragment of WordprocessingML this service cares
// about: paragraphs and the text runs inside them.
type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Texts []string `xml:"r>t"`
}

func (e *extractorService) extractDOCX(filePath string) (string, error) {
	reader, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer reader.Close()

	var docFile *zip.File
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("failed to open DOCX: word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX content: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX content: %w", err)
	}

	var document docxDocument
	if err := xml.Unmarshal(data, &document); err != nil {
		return "", fmt.Errorf("failed to parse DOCX content: %w", err)
	}

	var paragraphs []string
	for _, para := range document.Body.Paragraphs {
		paragraphs = append(paragraphs, strings.Join(para.Texts, ""))
	}

	text := strings.TrimSpace(strings.Join(paragraphs, "\n"))
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}
