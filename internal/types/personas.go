// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Persona identifies one of the three interviewer viewpoints. It changes both
// the scoring weights and the story-rendering emphasis.
type Persona string

// Persona constants define the closed set of interviewer viewpoints.
const (
	// PersonaRecruiter emphasizes culture and relationship framing
	PersonaRecruiter Persona = "recruiter"
	// PersonaHiringManager emphasizes quantified business impact
	PersonaHiringManager Persona = "hiring-manager"
	// PersonaPeer emphasizes technical depth and trade-off reasoning
	PersonaPeer Persona = "peer"
)

// AllPersonas returns every persona in fixed rendering order.
func AllPersonas() []Persona {
	return []Persona{PersonaRecruiter, PersonaHiringManager, PersonaPeer}
}

// IsValid reports whether p is a member of the persona enumeration.
func (p Persona) IsValid() bool {
	switch p {
	case PersonaRecruiter, PersonaHiringManager, PersonaPeer:
		return true
	}
	return false
}

// Dimension identifies one of the seven fixed rubric axes an answer is scored against.
type Dimension string

// Dimension constants define the closed set of rubric axes.
const (
	// DimensionStructure measures narrative organization (STAR-like flow)
	DimensionStructure Dimension = "structure"
	// DimensionSpecificity measures concrete, verifiable detail
	DimensionSpecificity Dimension = "specificity"
	// DimensionOutcome measures quantified results
	DimensionOutcome Dimension = "outcome"
	// DimensionRole measures personal ownership of the work
	DimensionRole Dimension = "role"
	// DimensionCompany measures organizational/business context
	DimensionCompany Dimension = "company"
	// DimensionPersona measures alignment with the target interviewer's language
	DimensionPersona Dimension = "persona"
	// DimensionRisks measures acknowledgment of risks, trade-offs, and lessons
	DimensionRisks Dimension = "risks"
)

// AllDimensions returns every dimension in fixed scoring order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionStructure,
		DimensionSpecificity,
		DimensionOutcome,
		DimensionRole,
		DimensionCompany,
		DimensionPersona,
		DimensionRisks,
	}
}

// IsValid reports whether d is a member of the dimension enumeration.
func (d Dimension) IsValid() bool {
	for _, known := range AllDimensions() {
		if d == known {
			return true
		}
	}
	return false
}
