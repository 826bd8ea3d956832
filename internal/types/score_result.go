// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

// RedFlagHit records a single red flag triggered by an answer. Hits are
// append-only per answer; a flag appears at most once regardless of how many
// of its keywords matched.
type RedFlagHit struct {
	Name    string `json:"name"`
	Penalty int    `json:"penalty"`
}

// ScoreResult is the output of scoring one answer for one persona.
type ScoreResult struct {
	// Overall is the final composite score, 0-100.
	Overall int `json:"overall"`
	// PerDimension holds the raw 0-100 score for each of the seven dimensions.
	PerDimension map[Dimension]int `json:"per_dimension"`
	// RedFlags lists the flags triggered by the answer, in catalogue order.
	RedFlags []RedFlagHit `json:"red_flags"`
	// CappedBy names the ceiling rules that actually reduced the score, in
	// application order.
	CappedBy []string `json:"capped_by"`
	// Confidence is 0-1, monotonically non-decreasing in answer length and
	// non-increasing in red-flag count.
	Confidence float64 `json:"confidence"`
}
