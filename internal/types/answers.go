// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

import "time"

// AnswerItem is one free-text practice answer supplied by the caller.
// Items are immutable once created; the engine only reads them.
type AnswerItem struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Persona  Persona        `json:"persona,omitempty"` // authoring context, not the scoring target
	Metadata AnswerMetadata `json:"metadata,omitempty"`
}

// AnswerMetadata carries optional caller-supplied context for an answer.
type AnswerMetadata struct {
	// Themes are externally supplied topic labels grouping answers; the engine
	// never invents theme names.
	Themes     []string  `json:"themes,omitempty"`
	QuestionID string    `json:"question_id,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitempty"`
}

// AnswerBank is the on-disk collection format consumed by the CLI.
type AnswerBank struct {
	Answers []AnswerItem `json:"answers"`
}

// HasTheme reports whether the answer is tagged with the given theme.
func (a *AnswerItem) HasTheme(theme string) bool {
	for _, t := range a.Metadata.Themes {
		if t == theme {
			return true
		}
	}
	return false
}
