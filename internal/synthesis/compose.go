package synthesis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// Default story-count band. Themes are merged or split to land inside it.
const (
	defaultMinStories = 3
	defaultMaxStories = 4
)

// Placeholder text for STAR fields no source clause filled. Downstream
// renderers rely on every field being non-empty.
const (
	placeholderSituation = "[Add context: where were you and what was going on?]"
	placeholderTask      = "[Add the goal: what were you asked to achieve?]"
	placeholderAction    = "[Add your actions: what did you personally do?]"
	placeholderResult    = "[Add the outcome: what measurably changed?]"
)

var clauseSplitter = regexp.MustCompile(`[.;!?\n]+`)

var situationCues = []string{
	"when ", "while ", "during", "at the time", "last year", "in 20", "we had",
	"our team was", "the company was", "back then",
}

var taskCues = []string{
	"needed to", "goal", "asked to", "responsible for", "had to", "objective",
	"my task", "we wanted to", "the plan was",
}

var actionCues = []string{
	"i led", "i built", "i wrote", "i designed", "i migrated", "i created",
	"i organized", "i analyzed", "i decided", "i proposed", "we implemented",
	"i implemented", "i set up", "i refactored",
}

// storyGroup is one banded cluster of themes and the answers selected for them.
type storyGroup struct {
	themes    []string
	answerIDs []string
	strength  float64
}

// bandSelections merges or splits theme selections until the group count
// lands in [minStories, maxStories]. Merging joins adjacent low-evidence
// themes; splitting divides the strongest multi-answer group. Both are
// deterministic, ties resolved toward the earlier position.
func bandSelections(selections []ThemeSelection, minStories, maxStories int) ([]storyGroup, []string) {
	groups := make([]storyGroup, 0, len(selections))
	for _, sel := range selections {
		groups = append(groups, storyGroup{
			themes:    []string{sel.Theme},
			answerIDs: append([]string{}, sel.AnswerIDs...),
			strength:  sel.Strength,
		})
	}

	var rationale []string

	for len(groups) > maxStories {
		// Merge the adjacent pair with the lowest combined strength.
		best := 0
		bestStrength := groups[0].strength + groups[1].strength
		for i := 1; i < len(groups)-1; i++ {
			combined := groups[i].strength + groups[i+1].strength
			if combined < bestStrength {
				best = i
				bestStrength = combined
			}
		}
		merged := mergeGroups(groups[best], groups[best+1])
		rationale = append(rationale, fmt.Sprintf(
			"merged themes %s and %s into one story (combined evidence strength %.1f)",
			strings.Join(groups[best].themes, "+"), strings.Join(groups[best+1].themes, "+"), bestStrength))
		groups = append(groups[:best], append([]storyGroup{merged}, groups[best+2:]...)...)
	}

	for len(groups) < minStories {
		// Split the strongest group that has answers to spare.
		split := -1
		for i := range groups {
			if len(groups[i].answerIDs) < 2 {
				continue
			}
			if split == -1 || groups[i].strength > groups[split].strength {
				split = i
			}
		}
		if split == -1 {
			// No group can be split; add an explicit gap-filler story on the
			// weakest-covered theme so the band is still honored.
			weakest := 0
			for i := range groups {
				if groups[i].strength < groups[weakest].strength {
					weakest = i
				}
			}
			theme := groups[weakest].themes[0]
			rationale = append(rationale, fmt.Sprintf("added a placeholder story for theme %s to reach the minimum story count", theme))
			groups = append(groups, storyGroup{themes: []string{theme}, answerIDs: []string{}})
			continue
		}

		first := storyGroup{
			themes:    append([]string{}, groups[split].themes...),
			answerIDs: groups[split].answerIDs[:1],
			strength:  groups[split].strength / 2,
		}
		rest := storyGroup{
			themes:    append([]string{}, groups[split].themes...),
			answerIDs: groups[split].answerIDs[1:],
			strength:  groups[split].strength / 2,
		}
		rationale = append(rationale, fmt.Sprintf(
			"split theme %s into two stories to reach the minimum story count",
			strings.Join(groups[split].themes, "+")))
		groups = append(groups[:split], append([]storyGroup{first, rest}, groups[split+1:]...)...)
	}

	return groups, rationale
}

func mergeGroups(a, b storyGroup) storyGroup {
	merged := storyGroup{
		themes:   append(append([]string{}, a.themes...), b.themes...),
		strength: a.strength + b.strength,
	}
	seen := make(map[string]bool)
	for _, id := range append(append([]string{}, a.answerIDs...), b.answerIDs...) {
		if !seen[id] {
			seen[id] = true
			merged.answerIDs = append(merged.answerIDs, id)
		}
	}
	return merged
}

// composeDraft merges the selected answers for one group into a STAR
// skeleton. An empty answer set still yields a well-formed draft whose fields
// are explicit placeholders; downstream renderers never special-case missing
// stories.
func composeDraft(group storyGroup, byID map[string]types.AnswerItem) (string, types.STAR) {
	var situation, task, action, result []string

	for _, id := range group.answerIDs {
		answer, ok := byID[id]
		if !ok {
			continue
		}
		for _, clause := range splitClauses(answer.Text) {
			switch classifyClause(clause, len(situation) > 0) {
			case "situation":
				situation = appendCapped(situation, clause)
			case "task":
				task = appendCapped(task, clause)
			case "action":
				action = appendCapped(action, clause)
			case "result":
				result = appendCapped(result, clause)
			}
		}
	}

	star := types.STAR{
		Situation: joinOrPlaceholder(situation, placeholderSituation),
		Task:      joinOrPlaceholder(task, placeholderTask),
		Action:    joinOrPlaceholder(action, placeholderAction),
		Result:    joinOrPlaceholder(result, placeholderResult),
	}

	return titleFor(group.themes, star), star
}

// splitClauses breaks answer text into trimmed, non-empty clauses.
func splitClauses(text string) []string {
	parts := clauseSplitter.Split(text, -1)
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}

// classifyClause assigns one clause to a STAR bucket by lexical cues. Result
// cues win first since quantified language is the strongest signal; unmatched
// clauses default to situation until one exists, then to action.
func classifyClause(clause string, haveSituation bool) string {
	lower := strings.ToLower(clause)

	if evidencePattern.MatchString(lower) {
		return "result"
	}
	for _, cue := range resultCues {
		if strings.Contains(lower, cue) {
			return "result"
		}
	}
	for _, cue := range actionCues {
		if strings.Contains(lower, cue) {
			return "action"
		}
	}
	for _, cue := range taskCues {
		if strings.Contains(lower, cue) {
			return "task"
		}
	}
	for _, cue := range situationCues {
		if strings.Contains(lower, cue) {
			return "situation"
		}
	}

	if !haveSituation {
		return "situation"
	}
	return "action"
}

// appendCapped keeps at most two clauses per STAR field.
func appendCapped(clauses []string, clause string) []string {
	if len(clauses) >= 2 {
		return clauses
	}
	return append(clauses, clause)
}

func joinOrPlaceholder(clauses []string, placeholder string) string {
	if len(clauses) == 0 {
		return placeholder
	}
	return strings.Join(clauses, ". ")
}

// titleFor derives a story title from the Result and Action fields combined
// with the theme names.
func titleFor(themes []string, star types.STAR) string {
	snippet := snippetFrom(star.Result)
	if snippet == "" {
		snippet = snippetFrom(star.Action)
	}
	if snippet == "" {
		snippet = "practice story"
	}
	return fmt.Sprintf("%s — %s", strings.Join(themes, " / "), snippet)
}

// snippetFrom takes the first few words of a non-placeholder field.
func snippetFrom(field string) string {
	if field == "" || strings.HasPrefix(field, "[") {
		return ""
	}
	words := strings.Fields(field)
	if len(words) > 8 {
		words = words[:8]
	}
	return strings.Join(words, " ")
}
