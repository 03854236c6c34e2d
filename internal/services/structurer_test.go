package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const janeJSON = `{
  "name": "Jane Doe",
  "email": "jane@x.com",
  "phone": "555-0100",
  "skills": ["Python"],
  "experience": ["5 yrs"],
  "education": ["BSc"]
}`

func TestStructurerParsesPlainJSON(t *testing.T) {
	stub := &stubGenerator{response: janeJSON}
	structurer := NewStructurerService(stub)

	resume, err := structurer.Structure(context.Background(), "Jane Doe, jane@x.com, Python, 5 yrs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resume.Name != "Jane Doe" {
		t.Fatalf("expected name Jane Doe, got %q", resume.Name)
	}
	if len(resume.Skills) != 1 || resume.Skills[0] != "Python" {
		t.Fatalf("unexpected skills: %v", resume.Skills)
	}
	if !strings.Contains(stub.lastPrompt, "Jane Doe, jane@x.com") {
		t.Fatalf("expected resume text in prompt: %s", stub.lastPrompt)
	}
}

func TestStructurerStripsMarkdownFences(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" + janeJSON + "\n```"}
	structurer := NewStructurerService(stub)

	resume, err := structurer.Structure(context.Background(), "some resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resume.Email != "jane@x.com" {
		t.Fatalf("expected email jane@x.com, got %q", resume.Email)
	}
}

func TestStructurerEmptyInputSkipsOracle(t *testing.T) {
	stub := &stubGenerator{response: janeJSON}
	structurer := NewStructurerService(stub)

	_, err := structurer.Structure(context.Background(), "   \n ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no oracle call on empty input, got %d", stub.calls)
	}
}

func TestStructurerFailures(t *testing.T) {
	cases := []struct {
		name     string
		response string
		err      error
	}{
		{name: "oracle error", err: errors.New("transport down")},
		{name: "not json", response: "I could not parse this resume."},
		{name: "missing key", response: `{"name": "Jane", "email": "", "phone": "", "skills": [], "experience": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubGenerator{response: tc.response, err: tc.err}
			structurer := NewStructurerService(stub)

			if _, err := structurer.Structure(context.Background(), "resume text"); err == nil {
				t.Fatalf("expected structuring to fail")
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	wrapped := "Here you go:\n```json\n{\"name\": \"x\"}\n```\nHope that helps."
	got := extractJSON(wrapped)
	if got != `{"name": "x"}` {
		t.Fatalf("extractJSON returned %q", got)
	}
}
