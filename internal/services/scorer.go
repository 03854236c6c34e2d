package services

import (
	"context"
	"log"
	"regexp"
	"strconv"

	"hragents/resume-screener/internal/models"
)

const (
	// FailedScore is the sentinel meaning "scoring could not be completed".
	// Valid scores live in [MinScore, MaxScore], so 0 is unambiguous.
	FailedScore = 0

	MinScore = 10
	MaxScore = 100

	scoringTemperature = 0.3
)

// scorePattern picks the first standalone run of 2-3 digits out of the
// oracle's reply. Digits embedded in a longer number never match.
var scorePattern = regexp.MustCompile(`\b(\d{2,3})\b`)

type ScorerService interface {
	Score(ctx context.Context, resume *models.StructuredResume, jobDescription string) int
}

type scorerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

func NewScorerService(generator TextGenerator) ScorerService {
	return &scorerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

// Score asks the oracle for a match score and parses it out of the reply.
// This stage fails soft: every failure degrades to FailedScore and the
// pipeline keeps going, so no error crosses this boundary.
func (s *scorerService) Score(ctx context.Context, resume *models.StructuredResume, jobDescription string) int {
	prompt := s.promptBuilder.BuildScoringPrompt(resume, jobDescription)

	response, err := s.generator.GenerateText(ctx, prompt, scoringTemperature)
	if err != nil {
		log.Printf("⚠️  Scoring call failed, using sentinel score: %v\n", err)
		return FailedScore
	}

	return ParseScore(response)
}

// ParseScore extracts the first 2-3 digit token from the oracle's reply and
// clamps it into [MinScore, MaxScore]. Replies without such a token yield
// FailedScore.
func ParseScore(response string) int {
	match := scorePattern.FindStringSubmatch(response)
	if match == nil {
		log.Printf("⚠️  No score found in oracle reply, using sentinel score\n")
		return FailedScore
	}

	score, err := strconv.Atoi(match[1])
	if err != nil {
		return FailedScore
	}

	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}

	return score
}
