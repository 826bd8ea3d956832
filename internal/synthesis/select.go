package synthesis

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	defaultPerTheme = 1
	// strongShare is the fraction of themes (rounded up) restricted to
	// answers carrying measurable evidence when any exist.
	strongShare = 0.7
)

// evidencePattern matches quantified results: percentages, currency, bare numbers.
var evidencePattern = regexp.MustCompile(`\$\s?\d[\d,]*(\.\d+)?|\d+(\.\d+)?%|\b\d[\d,]*(\.\d+)?\b`)

var resultCues = []string{
	"increased", "reduced", "improved", "saved", "grew", "delivered", "launched",
	"led to", "resulted in", "outcome", "ended up",
}

// ThemeSelection records the answers chosen to represent one theme.
type ThemeSelection struct {
	Theme     string
	AnswerIDs []string
	// Strength is the summed evidentiary strength of the chosen answers.
	Strength float64
	// Evidence reports whether every chosen answer carries quantified results.
	Evidence bool
}

// evidenceStrength ranks an answer's evidentiary value: quantified tokens
// outrank outcome language, which outranks plain text.
func evidenceStrength(text string) (strength float64, quantified int) {
	lower := strings.ToLower(text)
	quantified = len(evidencePattern.FindAllString(lower, -1))
	strength = 2.0 * float64(quantified)
	for _, cue := range resultCues {
		if strings.Contains(lower, cue) {
			strength++
		}
	}
	return strength, quantified
}

// SelectAnswers chooses, for each theme, the answer ids that best represent
// it. Roughly 70% of themes (rounded up) draw only from evidence-bearing
// answers when any are tagged with the theme; the remainder take the best
// available answer regardless of strength so no theme is left unfilled while
// answers for it exist. Selection is deterministic: ties break by original
// list order.
func SelectAnswers(answers []types.AnswerItem, themes []string, perTheme int) ([]ThemeSelection, error) {
	if len(answers) < 3 {
		return nil, ErrInsufficientAnswers
	}
	if len(themes) < 2 {
		return nil, ErrInsufficientThemes
	}
	if perTheme < 1 {
		perTheme = defaultPerTheme
	}

	type candidate struct {
		index      int
		id         string
		strength   float64
		quantified int
	}

	strongCount := int(math.Ceil(strongShare * float64(len(themes))))

	selections := make([]ThemeSelection, 0, len(themes))
	for themeIdx, theme := range themes {
		// Candidates are answers tagged with the theme, in input order.
		candidates := make([]candidate, 0)
		for i := range answers {
			if !answers[i].HasTheme(theme) {
				continue
			}
			strength, quantified := evidenceStrength(answers[i].Text)
			candidates = append(candidates, candidate{
				index:      i,
				id:         answers[i].ID,
				strength:   strength,
				quantified: quantified,
			})
		}

		// Rank by strength, ties by original position.
		sort.SliceStable(candidates, func(a, b int) bool {
			if candidates[a].strength != candidates[b].strength {
				return candidates[a].strength > candidates[b].strength
			}
			return candidates[a].index < candidates[b].index
		})

		pool := candidates
		if themeIdx < strongCount {
			evidenced := make([]candidate, 0, len(candidates))
			for _, c := range candidates {
				if c.quantified > 0 {
					evidenced = append(evidenced, c)
				}
			}
			// Restrict to measurable evidence where available; otherwise fall
			// back to the full pool rather than leaving the theme unfilled.
			if len(evidenced) > 0 {
				pool = evidenced
			}
		}

		sel := ThemeSelection{Theme: theme, AnswerIDs: []string{}, Evidence: len(pool) > 0}
		for i := 0; i < len(pool) && i < perTheme; i++ {
			sel.AnswerIDs = append(sel.AnswerIDs, pool[i].id)
			sel.Strength += pool[i].strength
			if pool[i].quantified == 0 {
				sel.Evidence = false
			}
		}
		if len(sel.AnswerIDs) == 0 {
			sel.Evidence = false
		}
		selections = append(selections, sel)
	}

	return selections, nil
}
