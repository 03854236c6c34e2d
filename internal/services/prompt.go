package services

import (
	"fmt"
	"strings"

	"hragents/resume-screener/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildStructuringPrompt creates the prompt asking the oracle for the fixed
// six-key resume record.
func (pb *PromptBuilder) BuildStructuringPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume parser. Extract key details and return valid JSON only.

Extract structured information from the following resume text:

%s

Respond strictly in this JSON format:
{
  "name": "Full Name",
  "email": "Email Address",
  "phone": "Phone Number",
  "skills": ["Skill1", "Skill2", "Skill3"],
  "experience": ["Job1 Description", "Job2 Description"],
  "education": ["Degree1", "Degree2"]
}

Only provide the JSON. No markdown, no explanation, no extra text.`, resumeText)
}

// BuildScoringPrompt creates the prompt asking the oracle for a bare match
// score between 10 and 100.
func (pb *PromptBuilder) BuildScoringPrompt(resume *models.StructuredResume, jobDescription string) string {
	return fmt.Sprintf(`You are a resume screening assistant. Based on the job description and resume provided, output ONLY a numeric score between 10 and 100 indicating how well the resume matches the job. Do not add any explanation or text. Only return the score.

Job Description:
%s

Resume:
%s

Give a score between 10 and 100. Only the number. No explanation.`,
		strings.TrimSpace(jobDescription), FlattenResume(resume))
}

// FlattenResume renders a structured resume back into "key: value" lines for
// the scoring prompt. Empty fields are omitted.
func FlattenResume(resume *models.StructuredResume) string {
	var lines []string

	appendField := func(key, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", key, value))
		}
	}

	appendField("name", resume.Name)
	appendField("email", resume.Email)
	appendField("phone", resume.Phone)
	appendField("skills", strings.Join(resume.Skills, ", "))
	appendField("experience", strings.Join(resume.Experience, ", "))
	appendField("education", strings.Join(resume.Education, ", "))

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
