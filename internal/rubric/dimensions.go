package rubric

import "github.com/jonathan/interview-coach/internal/types"

// defaultDimensions returns the built-in seven-axis rubric.
func defaultDimensions() []DimensionSpec {
	return []DimensionSpec{
		{
			Name:        types.DimensionStructure,
			Label:       "Structure",
			Description: "Narrative organization: clear situation, task, action, and result flow",
			Weight:      0.15,
			MaxScore:    100,
		},
		{
			Name:        types.DimensionSpecificity,
			Label:       "Specificity",
			Description: "Concrete, verifiable detail instead of generalities",
			Weight:      0.20,
			MaxScore:    100,
		},
		{
			Name:        types.DimensionOutcome,
			Label:       "Outcome",
			Description: "Quantified results: numbers, percentages, currency",
			Weight:      0.20,
			MaxScore:    100,
		},
		{
			Name:        types.DimensionRole,
			Label:       "Role",
			Description: "Personal ownership of decisions and work",
			Weight:      0.15,
			MaxScore:    100,
		},
		{
			Name:        types.DimensionCompany,
			Label:       "Company",
			Description: "Business and organizational context around the work",
			Weight:      0.10,
			MaxScore:    100,
		},
		{
			Name:        types.DimensionPersona,
			Label:       "Persona fit",
			Description: "Language aligned with the target interviewer's concerns",
			Weight:      0.10,
			MaxScore:    100,
		},
		{
			Name:        types.DimensionRisks,
			Label:       "Risks",
			Description: "Acknowledged risks, trade-offs, and lessons learned",
			Weight:      0.10,
			MaxScore:    100,
		},
	}
}

// defaultPersonaWeights returns the built-in per-persona dimension weights.
// Each persona's weights sum to 1.0.
func defaultPersonaWeights() map[types.Persona]map[types.Dimension]float64 {
	return map[types.Persona]map[types.Dimension]float64{
		types.PersonaRecruiter: {
			types.DimensionStructure:   0.15,
			types.DimensionSpecificity: 0.10,
			types.DimensionOutcome:     0.10,
			types.DimensionRole:        0.15,
			types.DimensionCompany:     0.15,
			types.DimensionPersona:     0.25,
			types.DimensionRisks:       0.10,
		},
		types.PersonaHiringManager: {
			types.DimensionStructure:   0.15,
			types.DimensionSpecificity: 0.15,
			types.DimensionOutcome:     0.30,
			types.DimensionRole:        0.15,
			types.DimensionCompany:     0.05,
			types.DimensionPersona:     0.10,
			types.DimensionRisks:       0.10,
		},
		types.PersonaPeer: {
			types.DimensionStructure:   0.10,
			types.DimensionSpecificity: 0.30,
			types.DimensionOutcome:     0.15,
			types.DimensionRole:        0.15,
			types.DimensionCompany:     0.05,
			types.DimensionPersona:     0.10,
			types.DimensionRisks:       0.15,
		},
	}
}
