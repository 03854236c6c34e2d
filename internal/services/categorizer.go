package services

import (
	"fmt"
	"strconv"
)

const (
	CategoryHighFit   = "High Fit (Selected for Interview)"
	CategoryMediumFit = "Medium Fit (Needs HR Review)"
	CategoryUnderfit  = "Underfit (Not Suitable)"
)

// Categorize maps a score, in whatever textual form it arrives, to one of
// the fixed category labels:
//
//	score >= 80        High Fit
//	60 <= score < 80   Medium Fit
//	score < 60         Underfit (this includes the failure sentinel 0)
//
// A value that does not parse as a number yields an invalid-format label
// echoing the raw input. That label is ordinary data, not an error: it flows
// through the decision rule like any other category.
func Categorize(rawScore string) string {
	score, err := strconv.ParseFloat(rawScore, 64)
	if err != nil {
		return fmt.Sprintf("Invalid Score Format: %s", rawScore)
	}

	switch {
	case score >= 80:
		return CategoryHighFit
	case score >= 60:
		return CategoryMediumFit
	default:
		return CategoryUnderfit
	}
}
