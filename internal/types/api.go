// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

import "github.com/go-playground/validator/v10"

// ScoreRequest is the HTTP request body for scoring one answer.
type ScoreRequest struct {
	Answer  AnswerItem `json:"answer" validate:"required"`
	Persona Persona    `json:"persona" validate:"required,oneof=recruiter hiring-manager peer"`
}

// SynthesizeRequest is the HTTP request body for synthesizing core stories.
type SynthesizeRequest struct {
	Answers    []AnswerItem `json:"answers" validate:"required"`
	Themes     []string     `json:"themes" validate:"required"`
	Persona    Persona      `json:"persona" validate:"required,oneof=recruiter hiring-manager peer"`
	MinStories int          `json:"min_stories,omitempty" validate:"omitempty,min=1"`
	MaxStories int          `json:"max_stories,omitempty" validate:"omitempty,min=1"`
	// Embellish requests post-processing of variant text through the
	// generative collaborator when one is configured. Selection and coverage
	// are identical either way.
	Embellish bool `json:"embellish,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SynthesizeRequest using the validator.
func (r *SynthesizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
