// Package scoring computes rubric scores for free-text practice answers.
// Everything here is a pure function of answer text and static keyword
// tables; there is no I/O and no shared mutable state.
package scoring

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-coach/internal/rubric"
	"github.com/jonathan/interview-coach/internal/types"
)

// Base scores for text that clears the minimum length. Cue bonuses add on
// top and the result clamps to [0,100]. The persona base sits lower so a
// generic answer registers as unaligned until it uses the target
// interviewer's language.
const (
	dimensionBase = 42
	personaBase   = 35
)

// quantifiedPattern matches measurable evidence: percentages, currency, and
// bare numbers.
var quantifiedPattern = regexp.MustCompile(`\$\s?\d[\d,]*(\.\d+)?|\d+(\.\d+)?%|\b\d[\d,]*(\.\d+)?\b`)

var structureCues = []string{
	"first", "then", "next", "finally", "after that", "as a result", "so i", "in the end",
}

var specificityCues = []string{
	"specifically", "for example", "in particular", "e.g.", "exactly", "precisely",
}

var outcomeCues = []string{
	"increased", "reduced", "improved", "saved", "grew", "delivered", "launched", "cut", "shipped",
}

var ownershipCues = []string{
	"i led", "i built", "i designed", "i decided", "i drove", "i owned", "my role",
	"i proposed", "i wrote", "i organized",
}

var companyCues = []string{
	"company", "team", "customer", "stakeholder", "business", "client", "product", "organization",
}

var riskCues = []string{
	"risk", "mistake", "learned", "trade-off", "tradeoff", "challenge", "constraint",
	"fallback", "downside",
}

// personaCues holds the language each interviewer persona listens for.
var personaCues = map[types.Persona][]string{
	types.PersonaRecruiter: {
		"culture", "collaborat", "relationship", "values", "communicat", "mentor", "team fit",
	},
	types.PersonaHiringManager: {
		"impact", "revenue", "cost", "deadline", "priorit", "metric", "business", "roadmap",
	},
	types.PersonaPeer: {
		"architecture", "design", "trade-off", "tradeoff", "debug", "latency", "scal",
		"implement", "refactor",
	},
}

// ScoreDimension computes the 0-100 raw score for one answer on one
// dimension. It is total: any input, including the empty string, yields a
// defined score (0 for text under the configured minimum length).
func ScoreDimension(answer types.AnswerItem, dim types.Dimension, persona types.Persona, cfg *rubric.Config) int {
	lower := strings.ToLower(answer.Text)
	length := utf8.RuneCountInString(answer.Text)
	return scoreDimensionLower(lower, length, dim, persona, cfg)
}

// scoreDimensionLower is the shared implementation; callers scoring all seven
// dimensions lowercase the text once.
func scoreDimensionLower(lower string, length int, dim types.Dimension, persona types.Persona, cfg *rubric.Config) int {
	if length < cfg.MinAnswerLength {
		return 0
	}

	score := dimensionBase
	switch dim {
	case types.DimensionStructure:
		score += 10 * countCues(lower, structureCues)
		if strings.Count(lower, ".") >= 3 {
			score += 8
		}
	case types.DimensionSpecificity:
		score += 12 * capInt(countQuantified(lower), 3)
		score += 8 * countCues(lower, specificityCues)
	case types.DimensionOutcome:
		score += 12 * countCues(lower, outcomeCues)
		if countQuantified(lower) > 0 {
			score += 20
		}
	case types.DimensionRole:
		score += 13 * countCues(lower, ownershipCues)
	case types.DimensionCompany:
		score += 12 * countCues(lower, companyCues)
	case types.DimensionPersona:
		score = personaBase + 13*countCues(lower, personaCues[persona])
	case types.DimensionRisks:
		score += 12 * countCues(lower, riskCues)
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// countCues returns how many distinct cues appear in the text. Repeated
// occurrences of one cue count once.
func countCues(lower string, cues []string) int {
	count := 0
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			count++
		}
	}
	return count
}

// countQuantified returns the number of measurable-evidence tokens in the text.
func countQuantified(text string) int {
	return len(quantifiedPattern.FindAllString(text, -1))
}

func capInt(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}
