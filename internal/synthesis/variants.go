package synthesis

import (
	"fmt"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// maxBulletWords caps how much of a STAR field one bullet carries.
const maxBulletWords = 14

var stakeholderCues = []string{
	"customer", "stakeholder", "client", "manager", "leadership", "partner", "team", "users",
}

var tradeoffCues = []string{
	"trade-off", "tradeoff", "instead of", "rather than", "at the cost of", "risk",
	"downside", "constraint",
}

// RenderVariants renders a STAR draft into all three persona-specific forms.
// Pure text templating over the draft fields; no external calls.
func RenderVariants(star types.STAR) map[types.Persona]types.Variant {
	variants := make(map[types.Persona]types.Variant, 3)
	for _, persona := range types.AllPersonas() {
		variants[persona] = types.Variant{
			Long:  longForm(star),
			Short: shortForm(persona, star),
		}
	}
	return variants
}

// longForm is the STAR draft as four labeled paragraphs.
func longForm(star types.STAR) string {
	return fmt.Sprintf(
		"Situation: %s\n\nTask: %s\n\nAction: %s\n\nResult: %s",
		star.Situation, star.Task, star.Action, star.Result,
	)
}

// shortForm builds the fixed six-bullet set for one persona. The
// hiring-manager bullet at index 3 is always the metrics bullet.
func shortForm(persona types.Persona, star types.STAR) []string {
	switch persona {
	case types.PersonaRecruiter:
		return []string{
			"Role: " + condense(star.Task),
			condense(star.Situation),
			"Decision: " + condense(star.Action),
			condense(star.Result),
			"Stakeholders: " + stakeholdersFrom(star),
			"Takeaway: how I collaborated with " + stakeholdersFrom(star),
		}
	case types.PersonaHiringManager:
		return []string{
			"Role: " + condense(star.Task),
			"Scope: " + condense(star.Situation),
			"Decision: " + condense(star.Action),
			"Metrics: " + metricsFrom(star.Result),
			condense(star.Situation),
			"Outcome: " + condense(star.Result),
		}
	case types.PersonaPeer:
		return []string{
			"Role: " + condense(star.Task),
			"Scope: " + condense(star.Situation),
			"Decision: " + condense(star.Action),
			"Technical approach: " + condense(star.Action),
			"Trade-offs: " + tradeoffsFrom(star),
			"Outcome: " + condense(star.Result),
		}
	}
	// Unknown personas never reach here; requests are validated at the DTO
	// layer and RenderVariants iterates the closed enumeration.
	return []string{
		"Role: " + condense(star.Task),
		"Scope: " + condense(star.Situation),
		"Decision: " + condense(star.Action),
		"Outcome: " + condense(star.Result),
	}
}

// condense trims a field to a bullet-sized fragment.
func condense(field string) string {
	words := strings.Fields(field)
	if len(words) > maxBulletWords {
		words = words[:maxBulletWords]
		return strings.Join(words, " ") + "…"
	}
	if len(words) == 0 {
		return "(not captured)"
	}
	return strings.Join(words, " ")
}

// stakeholdersFrom names the people around the story, falling back to a
// generic framing when the draft mentions none.
func stakeholdersFrom(star types.STAR) string {
	lower := strings.ToLower(star.Situation + " " + star.Action)
	for _, cue := range stakeholderCues {
		if strings.Contains(lower, cue) {
			return "the " + cue + " side of the story"
		}
	}
	return "the wider team"
}

// metricsFrom extracts quantified tokens from the result field.
func metricsFrom(result string) string {
	matches := evidencePattern.FindAllString(result, -1)
	if len(matches) == 0 {
		return "no quantified metrics in the source answer"
	}
	if len(matches) > 3 {
		matches = matches[:3]
	}
	return strings.Join(matches, ", ")
}

// tradeoffsFrom surfaces trade-off language from the draft.
func tradeoffsFrom(star types.STAR) string {
	for _, field := range []string{star.Action, star.Result, star.Task, star.Situation} {
		lower := strings.ToLower(field)
		for _, cue := range tradeoffCues {
			if strings.Contains(lower, cue) {
				return condense(field)
			}
		}
	}
	return "not discussed in the source answer"
}
