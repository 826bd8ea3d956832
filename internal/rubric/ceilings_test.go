package rubric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/types"
)

// balancedDims returns dimension scores that trigger no imbalance or
// persona-mismatch cap.
func balancedDims(value int) map[types.Dimension]int {
	dims := make(map[types.Dimension]int)
	for _, dim := range types.AllDimensions() {
		dims[dim] = value
	}
	return dims
}

func TestCeilingInsufficientLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   float64
	}{
		{"very short capped at 40", 30, 40},
		{"just under 50 capped at 40", 49, 40},
		{"exactly 50 capped at 60", 50, 60},
		{"just under 100 capped at 60", 99, 60},
		{"exactly 100 uncapped", 100, 100},
		{"long uncapped", 500, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CeilingInsufficientLength(CeilingContext{Score: 100, AnswerLength: tt.length})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCeilingInsufficientLength_NeverRaises(t *testing.T) {
	got := CeilingInsufficientLength(CeilingContext{Score: 25, AnswerLength: 10})
	assert.Equal(t, 25.0, got)
}

func TestCeilingHighRedFlags(t *testing.T) {
	tests := []struct {
		flags int
		want  float64
	}{
		{0, 100},
		{1, 100},
		{2, 75},
		{3, 60},
		{4, 45},
		{7, 45},
	}
	for _, tt := range tests {
		got := CeilingHighRedFlags(CeilingContext{Score: 100, RedFlagCount: tt.flags})
		assert.Equal(t, tt.want, got, "flag count %d", tt.flags)
	}
}

func TestCeilingDimensionImbalance(t *testing.T) {
	dims := balancedDims(90)
	dims[types.DimensionRisks] = 10
	// avg = (6*90+10)/7 = 550/7 ≈ 78.57, min 10 < avg-50

	got := CeilingDimensionImbalance(CeilingContext{Score: 95, DimensionScores: dims})
	assert.InDelta(t, 550.0/7.0, got, 1e-9)
}

func TestCeilingDimensionImbalance_NoTriggerWhenBalanced(t *testing.T) {
	got := CeilingDimensionImbalance(CeilingContext{Score: 95, DimensionScores: balancedDims(80)})
	assert.Equal(t, 95.0, got)
}

func TestCeilingPersonaMismatch(t *testing.T) {
	tests := []struct {
		personaScore int
		want         float64
	}{
		{10, 70},
		{39, 70},
		{40, 85},
		{54, 85},
		{55, 100},
		{90, 100},
	}
	for _, tt := range tests {
		dims := balancedDims(80)
		dims[types.DimensionPersona] = tt.personaScore
		got := CeilingPersonaMismatch(CeilingContext{Score: 100, DimensionScores: dims})
		assert.Equal(t, tt.want, got, "persona score %d", tt.personaScore)
	}
}

func TestApplyCeilings_SequentialMinimumWins(t *testing.T) {
	dims := balancedDims(80)
	dims[types.DimensionPersona] = 50 // triggers the 85 cap, already below

	final, cappedBy := ApplyCeilings(DefaultCeilingRules(), CeilingContext{
		Score:           80,
		AnswerLength:    70, // 60 cap
		RedFlagCount:    0,
		DimensionScores: dims,
	})

	assert.Equal(t, 60.0, final)
	assert.Equal(t, []string{"insufficient-length"}, cappedBy)
}

func TestApplyCeilings_NeverRaisesLowScore(t *testing.T) {
	final, cappedBy := ApplyCeilings(DefaultCeilingRules(), CeilingContext{
		Score:           20,
		AnswerLength:    30, // 40 cap, above the score
		RedFlagCount:    2,  // 75 cap, above the score
		DimensionScores: balancedDims(60),
	})

	assert.Equal(t, 20.0, final)
	assert.Empty(t, cappedBy)
}

func TestApplyCeilings_ReportsEveryReducingRule(t *testing.T) {
	dims := balancedDims(80)
	dims[types.DimensionPersona] = 30 // 70 cap

	final, cappedBy := ApplyCeilings(DefaultCeilingRules(), CeilingContext{
		Score:           100,
		AnswerLength:    200,
		RedFlagCount:    2, // 75 cap first
		DimensionScores: dims,
	})

	assert.Equal(t, 70.0, final)
	assert.Equal(t, []string{"high-red-flags", "persona-mismatch"}, cappedBy)
}
