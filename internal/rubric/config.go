// Package rubric provides the validated scoring configuration: dimension
// definitions, persona weights, the red-flag catalogue, and the ceiling-rule
// set. The configuration is the single source of truth for the scoring engine
// and is immutable once validated.
package rubric

import (
	"fmt"
	"math"
	"regexp"

	"github.com/jonathan/interview-coach/internal/types"
)

// weightTolerance is the floating tolerance for weight-sum checks.
const weightTolerance = 1e-3

// ConfigError represents an invalid rubric configuration. Configuration errors
// are raised once at load time and must prevent the engine from being used.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rubric config error: %s: %s", e.Field, e.Message)
}

// DimensionSpec defines one rubric axis.
type DimensionSpec struct {
	Name        types.Dimension `json:"name"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	// Weight is the dimension's share of the composite score, in (0,1].
	Weight   float64 `json:"weight"`
	MaxScore int     `json:"max_score"`
}

// Config is the complete scoring configuration (the score-v2 rubric).
// Treat a loaded Config as read-only; hot-swapping means replacing the whole
// value, never mutating fields in place.
type Config struct {
	Version    string          `json:"version"`
	Dimensions []DimensionSpec `json:"dimensions"`
	// PersonaWeights maps each persona to its per-dimension weights. Each
	// persona's weights sum to 1.0 within tolerance.
	PersonaWeights map[types.Persona]map[types.Dimension]float64 `json:"persona_weights"`
	RedFlags       []RedFlag                                     `json:"red_flags"`
	// CeilingRules run in order; they are code, not data, and are always the
	// fixed strategy list from DefaultCeilingRules.
	CeilingRules []CeilingRule `json:"-"`
	// MinAnswerLength is the character count below which every dimension
	// scores zero.
	MinAnswerLength int `json:"min_answer_length"`
	// MaxPenalties bounds the total points red flags may subtract.
	MaxPenalties int `json:"max_penalties"`
}

// Default returns the built-in rubric configuration. The returned value
// passes Validate.
func Default() *Config {
	return &Config{
		Version:         "score-v2",
		Dimensions:      defaultDimensions(),
		PersonaWeights:  defaultPersonaWeights(),
		RedFlags:        defaultRedFlags(),
		CeilingRules:    DefaultCeilingRules(),
		MinAnswerLength: 20,
		MaxPenalties:    30,
	}
}

// Validate checks every configuration invariant. It returns a *ConfigError on
// the first violation found. Scoring itself cannot fail given a config that
// passed validation.
func (c *Config) Validate() error {
	if c.Version == "" {
		return &ConfigError{Field: "version", Message: "must not be empty"}
	}

	if err := c.validateDimensions(); err != nil {
		return err
	}
	if err := c.validatePersonaWeights(); err != nil {
		return err
	}
	if err := c.validateRedFlags(); err != nil {
		return err
	}

	if len(c.CeilingRules) == 0 {
		return &ConfigError{Field: "ceiling_rules", Message: "at least one ceiling rule is required"}
	}
	seenRules := make(map[string]bool)
	for _, rule := range c.CeilingRules {
		if rule.Name == "" {
			return &ConfigError{Field: "ceiling_rules", Message: "rule name must not be empty"}
		}
		if rule.Apply == nil {
			return &ConfigError{Field: "ceiling_rules", Message: fmt.Sprintf("rule %q has no apply function", rule.Name)}
		}
		if seenRules[rule.Name] {
			return &ConfigError{Field: "ceiling_rules", Message: fmt.Sprintf("duplicate rule name %q", rule.Name)}
		}
		seenRules[rule.Name] = true
	}

	if c.MinAnswerLength < 0 {
		return &ConfigError{Field: "min_answer_length", Message: "must be non-negative"}
	}
	if c.MaxPenalties < 0 {
		return &ConfigError{Field: "max_penalties", Message: "must be non-negative"}
	}

	return nil
}

func (c *Config) validateDimensions() error {
	expected := types.AllDimensions()
	if len(c.Dimensions) != len(expected) {
		return &ConfigError{
			Field:   "dimensions",
			Message: fmt.Sprintf("expected exactly %d dimensions, got %d", len(expected), len(c.Dimensions)),
		}
	}

	seen := make(map[types.Dimension]bool)
	sum := 0.0
	for _, dim := range c.Dimensions {
		if !dim.Name.IsValid() {
			return &ConfigError{Field: "dimensions", Message: fmt.Sprintf("unknown dimension %q", dim.Name)}
		}
		if seen[dim.Name] {
			return &ConfigError{Field: "dimensions", Message: fmt.Sprintf("duplicate dimension %q", dim.Name)}
		}
		seen[dim.Name] = true

		if dim.Weight <= 0 || dim.Weight > 1 {
			return &ConfigError{
				Field:   "dimensions",
				Message: fmt.Sprintf("dimension %q weight %.4f outside (0,1]", dim.Name, dim.Weight),
			}
		}
		if dim.MaxScore != 100 {
			return &ConfigError{
				Field:   "dimensions",
				Message: fmt.Sprintf("dimension %q max score must be 100, got %d", dim.Name, dim.MaxScore),
			}
		}
		sum += dim.Weight
	}

	if math.Abs(sum-1.0) > weightTolerance {
		return &ConfigError{
			Field:   "dimensions",
			Message: fmt.Sprintf("weights sum to %.4f, expected 1.0 within %.0e", sum, weightTolerance),
		}
	}
	return nil
}

func (c *Config) validatePersonaWeights() error {
	personas := types.AllPersonas()
	if len(c.PersonaWeights) != len(personas) {
		return &ConfigError{
			Field:   "persona_weights",
			Message: fmt.Sprintf("expected weights for exactly %d personas, got %d", len(personas), len(c.PersonaWeights)),
		}
	}

	for _, persona := range personas {
		weights, ok := c.PersonaWeights[persona]
		if !ok {
			return &ConfigError{Field: "persona_weights", Message: fmt.Sprintf("missing persona %q", persona)}
		}

		sum := 0.0
		for _, dim := range types.AllDimensions() {
			w, ok := weights[dim]
			if !ok {
				return &ConfigError{
					Field:   "persona_weights",
					Message: fmt.Sprintf("persona %q missing dimension %q", persona, dim),
				}
			}
			if w <= 0 || w > 1 {
				return &ConfigError{
					Field:   "persona_weights",
					Message: fmt.Sprintf("persona %q dimension %q weight %.4f outside (0,1]", persona, dim, w),
				}
			}
			sum += w
		}
		if len(weights) != len(types.AllDimensions()) {
			return &ConfigError{
				Field:   "persona_weights",
				Message: fmt.Sprintf("persona %q has weights for unknown dimensions", persona),
			}
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return &ConfigError{
				Field:   "persona_weights",
				Message: fmt.Sprintf("persona %q weights sum to %.4f, expected 1.0 within %.0e", persona, sum, weightTolerance),
			}
		}
	}
	return nil
}

func (c *Config) validateRedFlags() error {
	seen := make(map[string]bool)
	for i := range c.RedFlags {
		flag := &c.RedFlags[i]
		if flag.Name == "" {
			return &ConfigError{Field: "red_flags", Message: "flag name must not be empty"}
		}
		if seen[flag.Name] {
			return &ConfigError{Field: "red_flags", Message: fmt.Sprintf("duplicate flag %q", flag.Name)}
		}
		seen[flag.Name] = true

		if flag.Penalty < -20 || flag.Penalty > -1 {
			return &ConfigError{
				Field:   "red_flags",
				Message: fmt.Sprintf("flag %q penalty %d outside [-20,-1]", flag.Name, flag.Penalty),
			}
		}
		if len(flag.Keywords) == 0 && flag.Pattern == "" {
			return &ConfigError{
				Field:   "red_flags",
				Message: fmt.Sprintf("flag %q needs at least one keyword or a pattern", flag.Name),
			}
		}
		if flag.Pattern != "" {
			re, err := regexp.Compile("(?i)" + flag.Pattern)
			if err != nil {
				return &ConfigError{
					Field:   "red_flags",
					Message: fmt.Sprintf("flag %q pattern does not compile: %v", flag.Name, err),
				}
			}
			flag.re = re
		}
	}
	return nil
}
