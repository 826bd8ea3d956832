package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-coach/internal/rubric"
	"github.com/jonathan/interview-coach/internal/types"
)

// Context is the input to one scoring call. Config must have passed
// validation; given that, Score cannot fail for any answer text.
type Context struct {
	Answer  types.AnswerItem
	Persona types.Persona
	Config  *rubric.Config
}

// Score computes the final composite score for one answer under one persona:
// weighted per-dimension scores, bounded red-flag penalties, then the ceiling
// rule chain, clamped to [0,100].
func Score(ctx Context) types.ScoreResult {
	cfg := ctx.Config
	lower := strings.ToLower(ctx.Answer.Text)
	length := utf8.RuneCountInString(ctx.Answer.Text)

	// 1. Raw score per dimension.
	perDimension := make(map[types.Dimension]int, len(types.AllDimensions()))
	for _, dim := range types.AllDimensions() {
		perDimension[dim] = scoreDimensionLower(lower, length, dim, ctx.Persona, cfg)
	}

	// 2. Weighted composite under the active persona.
	weights := cfg.PersonaWeights[ctx.Persona]
	base := 0.0
	for _, dim := range types.AllDimensions() {
		base += weights[dim] * float64(perDimension[dim])
	}

	// 3. Red-flag penalties, bounded by the configured maximum.
	hits := DetectRedFlags(ctx.Answer.Text, cfg.RedFlags)
	penalty := 0
	for _, hit := range hits {
		penalty += hit.Penalty
	}
	if -penalty > cfg.MaxPenalties {
		penalty = -cfg.MaxPenalties
	}
	penalized := base + float64(penalty)

	// 4. Ceiling rules: sequential application, global minimum wins.
	final, cappedBy := rubric.ApplyCeilings(cfg.CeilingRules, rubric.CeilingContext{
		Score:           penalized,
		Persona:         ctx.Persona,
		AnswerLength:    length,
		RedFlagCount:    len(hits),
		DimensionScores: perDimension,
	})
	if cappedBy == nil {
		cappedBy = []string{}
	}

	// 5. Clamp and round.
	overall := int(math.Round(math.Min(100, math.Max(0, final))))

	return types.ScoreResult{
		Overall:      overall,
		PerDimension: perDimension,
		RedFlags:     hits,
		CappedBy:     cappedBy,
		Confidence:   confidence(length, len(hits)),
	}
}

// confidence derives a 0-1 trust signal from answer length and red-flag
// count. It is monotonic: non-decreasing in length, non-increasing in flag
// count.
func confidence(length, flagCount int) float64 {
	c := 0.25 + 0.75*math.Min(float64(length)/600.0, 1.0) - 0.1*float64(flagCount)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
