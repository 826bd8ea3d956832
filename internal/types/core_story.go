// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

// STAR holds the four narrative fields of a composed story skeleton.
// Fields are never empty: gap-filler stories carry explicit placeholder text.
type STAR struct {
	Situation string `json:"situation"`
	Task      string `json:"task"`
	Action    string `json:"action"`
	Result    string `json:"result"`
}

// Variant is one persona-specific rendering of a story.
type Variant struct {
	// Long is the STAR draft formatted as four labeled paragraphs.
	Long string `json:"long"`
	// Short is a persona-specific bullet set, always 4-6 entries.
	Short []string `json:"short"`
}

// CoreStory is a synthesized, persona-rendered narrative built from one or
// more scored answers. Created by the synthesis pipeline, immutable afterward.
type CoreStory struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Coverage        []string            `json:"coverage"`
	SourceAnswerIDs []string            `json:"source_answer_ids"`
	Star            STAR                `json:"star"`
	Variants        map[Persona]Variant `json:"variants"`
}

// CoverageMap records which synthesized stories address which input themes.
// Every input theme appears as a key; a theme nothing covers maps to an empty
// slice (an explicit gap), never a missing key.
type CoverageMap map[string][]string

// SynthesisInput is the caller contract for Synthesize.
type SynthesisInput struct {
	Answers []AnswerItem `json:"answers"`
	Themes  []string     `json:"themes"`
	Persona Persona      `json:"persona"`
	// MinStories/MaxStories bound the synthesized story count; zero values
	// take the defaults (3 and 4).
	MinStories int `json:"min_stories,omitempty"`
	MaxStories int `json:"max_stories,omitempty"`
}

// SynthesisOutput is the complete result of one synthesis call.
type SynthesisOutput struct {
	CoreStories []CoreStory `json:"core_stories"`
	CoverageMap CoverageMap `json:"coverage_map"`
	Rationale   []string    `json:"rationale"`
	Version     string      `json:"version"`
}
