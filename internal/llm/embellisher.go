package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// personaFraming tells the model what each interviewer persona cares about.
var personaFraming = map[types.Persona]string{
	types.PersonaRecruiter:     "culture fit, collaboration, and relationships; warm and accessible language",
	types.PersonaHiringManager: "quantified business impact, scope, and delivery; crisp and outcome-led language",
	types.PersonaPeer:          "technical depth, design decisions, and trade-offs; precise engineering language",
}

// GeminiEmbellisher implements the synthesis embellishment hook on top of a
// Gemini client. Failures are expected to be recovered by the caller, which
// falls back to the templated variant.
type GeminiEmbellisher struct {
	client Client
}

// NewGeminiEmbellisher creates an embellisher backed by the given client.
func NewGeminiEmbellisher(client Client) *GeminiEmbellisher {
	return &GeminiEmbellisher{client: client}
}

// embellishedVariant is the JSON shape the model is asked to return.
type embellishedVariant struct {
	Long  string   `json:"long"`
	Short []string `json:"short"`
}

// Embellish rewrites one story's variant for one persona. It must not change
// the facts of the story, only the prose; the result is rejected if it does
// not match the required variant shape.
func (e *GeminiEmbellisher) Embellish(ctx context.Context, story types.CoreStory, persona types.Persona) (types.Variant, error) {
	variant, ok := story.Variants[persona]
	if !ok {
		return types.Variant{}, fmt.Errorf("story %s has no %s variant to embellish", story.ID, persona)
	}

	prompt := buildEmbellishPrompt(story, persona, variant)
	raw, err := e.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return types.Variant{}, fmt.Errorf("embellishment generation failed: %w", err)
	}

	var parsed embellishedVariant
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return types.Variant{}, fmt.Errorf("failed to parse embellished variant JSON: %w", err)
	}
	if parsed.Long == "" || len(parsed.Short) < 4 || len(parsed.Short) > 6 {
		return types.Variant{}, fmt.Errorf("embellished variant has invalid shape: long=%d chars, short=%d bullets",
			len(parsed.Long), len(parsed.Short))
	}

	return types.Variant{Long: parsed.Long, Short: parsed.Short}, nil
}

// buildEmbellishPrompt asks for a rewrite of the templated variant without
// inventing facts.
func buildEmbellishPrompt(story types.CoreStory, persona types.Persona, variant types.Variant) string {
	var sb strings.Builder

	sb.WriteString("You polish interview stories. Rewrite the variant below for a ")
	sb.WriteString(string(persona))
	sb.WriteString(" interviewer, emphasizing ")
	sb.WriteString(personaFraming[persona])
	sb.WriteString(".\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Do not invent facts, numbers, names, or outcomes.\n")
	sb.WriteString("- Keep bracketed placeholders exactly as they are.\n")
	sb.WriteString("- Return JSON: {\"long\": string, \"short\": [4-6 strings]}.\n")
	sb.WriteString("- Keep the same bullet order and labels in \"short\".\n\n")

	sb.WriteString("Story title: ")
	sb.WriteString(story.Title)
	sb.WriteString("\n\nCurrent long form:\n")
	sb.WriteString(variant.Long)
	sb.WriteString("\n\nCurrent bullets:\n")
	for _, bullet := range variant.Short {
		sb.WriteString("- ")
		sb.WriteString(bullet)
		sb.WriteString("\n")
	}

	return sb.String()
}
