package services

import "strings"

const (
	DecisionInterview = "Send Interview Invite"
	DecisionHRReview  = "Send to HR for Manual Review"
	DecisionReject    = "Send Rejection Email"
)

// Decide maps a category label to the downstream action. Matching is by
// substring containment, in priority order, so any label carrying "High Fit"
// routes to the interview branch regardless of what surrounds it. The final
// branch catches Underfit and invalid-format labels alike.
func Decide(category string) string {
	switch {
	case strings.Contains(category, "High Fit"):
		return DecisionInterview
	case strings.Contains(category, "Medium Fit"):
		return DecisionHRReview
	default:
		return DecisionReject
	}
}
