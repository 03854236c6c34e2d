package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hragents/resume-screener/internal/models"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubGenerator) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	s.lastPrompt = prompt
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		name     string
		response string
		want     int
	}{
		{name: "bare number", response: "85", want: 85},
		{name: "number with prose", response: "Score: 85", want: 85},
		{name: "three digits above max clamps", response: "150", want: 100},
		{name: "exactly max", response: "100", want: 100},
		{name: "single digit degrades to sentinel", response: "7", want: FailedScore},
		{name: "no digits", response: "excellent candidate", want: FailedScore},
		{name: "empty reply", response: "", want: FailedScore},
		{name: "digits embedded in longer number", response: "1234567", want: FailedScore},
		{name: "first standalone token wins", response: "rates 42 out of 90", want: 42},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseScore(tc.response)
			if got != tc.want {
				t.Fatalf("ParseScore(%q) = %d, want %d", tc.response, got, tc.want)
			}
		})
	}
}

func TestScorerOracleFailureDegradesToSentinel(t *testing.T) {
	stub := &stubGenerator{err: errors.New("boom")}
	scorer := NewScorerService(stub)

	score := scorer.Score(context.Background(), &models.StructuredResume{Name: "Jane"}, "Go developer")
	if score != FailedScore {
		t.Fatalf("expected sentinel score %d, got %d", FailedScore, score)
	}
}

func TestScorerPromptCarriesResumeAndJobDescription(t *testing.T) {
	stub := &stubGenerator{response: "85"}
	scorer := NewScorerService(stub)

	resume := &models.StructuredResume{
		Name:   "Jane Doe",
		Email:  "jane@x.com",
		Skills: []string{"Python", "Go"},
	}

	score := scorer.Score(context.Background(), resume, "Backend engineer, 5 yrs")
	if score != 85 {
		t.Fatalf("expected score 85, got %d", score)
	}

	if !strings.Contains(stub.lastPrompt, "Backend engineer, 5 yrs") {
		t.Fatalf("expected job description in prompt: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "name: Jane Doe") {
		t.Fatalf("expected flattened resume in prompt: %s", stub.lastPrompt)
	}
}

func TestFlattenResumeOmitsEmptyFields(t *testing.T) {
	resume := &models.StructuredResume{
		Name:   "Jane Doe",
		Skills: []string{"Python", "Go"},
	}

	flat := FlattenResume(resume)

	if !strings.Contains(flat, "name: Jane Doe") {
		t.Fatalf("expected name line, got %q", flat)
	}
	if !strings.Contains(flat, "skills: Python, Go") {
		t.Fatalf("expected comma-joined skills, got %q", flat)
	}
	if strings.Contains(flat, "email") || strings.Contains(flat, "phone") {
		t.Fatalf("expected empty fields to be omitted, got %q", flat)
	}
}
