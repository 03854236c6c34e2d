package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hragents/resume-screener/internal/models"
)

// ErrEmptyInput marks a structuring request with no extracted text. It is a
// precondition violation: the oracle is never called.
var ErrEmptyInput = errors.New("no text extracted from resume")

// structuringTemperature keeps the oracle's replies as deterministic as the
// API allows.
const structuringTemperature = 0.3

var resumeRequiredKeys = []string{"name", "email", "phone", "skills", "experience", "education"}

type StructurerService interface {
	Structure(ctx context.Context, resumeText string) (*models.StructuredResume, error)
}

type structurerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

func NewStructurerService(generator TextGenerator) StructurerService {
	return &structurerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

// Structure asks the oracle for the six-key record and parses the reply.
// Any transport failure, parse failure, or missing key fails the whole
// document; no partial record is ever returned. One call, no retry.
func (s *structurerService) Structure(ctx context.Context, resumeText string) (*models.StructuredResume, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyInput
	}

	prompt := s.promptBuilder.BuildStructuringPrompt(resumeText)

	response, err := s.generator.GenerateText(ctx, prompt, structuringTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate structured resume: %w", err)
	}

	jsonStr := extractJSON(response)

	// Validate the key set before decoding into the record, so a reply
	// that parses but drops a field still fails the document.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse structuring response: %w", err)
	}

	for _, key := range resumeRequiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("structuring response is missing required key %q", key)
		}
	}

	var resume models.StructuredResume
	if err := json.Unmarshal([]byte(jsonStr), &resume); err != nil {
		return nil, fmt.Errorf("failed to parse structuring response: %w", err)
	}

	return &resume, nil
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting.
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object boundaries
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
