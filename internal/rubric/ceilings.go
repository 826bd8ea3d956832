package rubric

import (
	"math"

	"github.com/jonathan/interview-coach/internal/types"
)

// CeilingContext carries everything a ceiling rule may consult. Score is the
// running score fed through the rule chain.
type CeilingContext struct {
	Score           float64
	Persona         types.Persona
	AnswerLength    int
	RedFlagCount    int
	DimensionScores map[types.Dimension]int
}

// CeilingFunc is a pure, total capping function. It returns the input score
// unchanged when its trigger condition is not met and never raises a score.
type CeilingFunc func(ctx CeilingContext) float64

// CeilingRule pairs a capping function with a stable name for the score trace.
type CeilingRule struct {
	Name  string
	Apply CeilingFunc
}

// CeilingInsufficientLength caps short answers: under 50 characters at 40,
// under 100 characters at 60.
func CeilingInsufficientLength(ctx CeilingContext) float64 {
	switch {
	case ctx.AnswerLength < 50:
		return math.Min(ctx.Score, 40)
	case ctx.AnswerLength < 100:
		return math.Min(ctx.Score, 60)
	}
	return ctx.Score
}

// CeilingHighRedFlags caps answers by triggered red-flag count: four or more
// at 45, exactly three at 60, exactly two at 75.
func CeilingHighRedFlags(ctx CeilingContext) float64 {
	switch {
	case ctx.RedFlagCount >= 4:
		return math.Min(ctx.Score, 45)
	case ctx.RedFlagCount == 3:
		return math.Min(ctx.Score, 60)
	case ctx.RedFlagCount == 2:
		return math.Min(ctx.Score, 75)
	}
	return ctx.Score
}

// CeilingDimensionImbalance caps at the dimension average when the weakest
// dimension trails the average by more than 50 points. An answer strong on one
// axis and collapsed on another does not support a trustworthy overall score.
func CeilingDimensionImbalance(ctx CeilingContext) float64 {
	if len(ctx.DimensionScores) == 0 {
		return ctx.Score
	}

	minScore := math.MaxFloat64
	sum := 0.0
	for _, s := range ctx.DimensionScores {
		v := float64(s)
		if v < minScore {
			minScore = v
		}
		sum += v
	}
	avg := sum / float64(len(ctx.DimensionScores))

	if minScore < avg-50 {
		return math.Min(ctx.Score, avg)
	}
	return ctx.Score
}

// CeilingPersonaMismatch caps answers whose persona-fit dimension is weak:
// under 40 at 70, under 55 at 85.
func CeilingPersonaMismatch(ctx CeilingContext) float64 {
	personaScore, ok := ctx.DimensionScores[types.DimensionPersona]
	if !ok {
		return ctx.Score
	}
	switch {
	case personaScore < 40:
		return math.Min(ctx.Score, 70)
	case personaScore < 55:
		return math.Min(ctx.Score, 85)
	}
	return ctx.Score
}

// DefaultCeilingRules returns the fixed, ordered rule list. New rules are
// added by appending here without touching existing ones.
func DefaultCeilingRules() []CeilingRule {
	return []CeilingRule{
		{Name: "insufficient-length", Apply: CeilingInsufficientLength},
		{Name: "high-red-flags", Apply: CeilingHighRedFlags},
		{Name: "dimension-imbalance", Apply: CeilingDimensionImbalance},
		{Name: "persona-mismatch", Apply: CeilingPersonaMismatch},
	}
}

// ApplyCeilings runs the rule chain sequentially, feeding each rule's output
// into the next, and returns the minimum score any rule produced (including
// the pre-ceiling score) together with the names of the rules that actually
// reduced the score.
func ApplyCeilings(rules []CeilingRule, ctx CeilingContext) (float64, []string) {
	minScore := ctx.Score
	current := ctx.Score
	var cappedBy []string

	for _, rule := range rules {
		stepCtx := ctx
		stepCtx.Score = current
		out := rule.Apply(stepCtx)
		if out < current {
			cappedBy = append(cappedBy, rule.Name)
		}
		if out < minScore {
			minScore = out
		}
		current = out
	}

	return minScore, cappedBy
}
