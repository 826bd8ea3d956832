package rubric

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/interview-coach/internal/types"
)

// fileConfig is the JSON overlay format for Load. Ceiling rules are code, not
// data, so the file cannot change them.
type fileConfig struct {
	Version         string                                        `json:"version,omitempty"`
	Dimensions      []DimensionSpec                               `json:"dimensions,omitempty"`
	PersonaWeights  map[types.Persona]map[types.Dimension]float64 `json:"persona_weights,omitempty"`
	RedFlags        []RedFlag                                     `json:"red_flags,omitempty"`
	MinAnswerLength *int                                          `json:"min_answer_length,omitempty"`
	MaxPenalties    *int                                          `json:"max_penalties,omitempty"`
}

// Load reads a rubric overlay file and merges it over the default
// configuration. Each section present in the file replaces the corresponding
// default section wholesale. The merged configuration is validated before it
// is returned; an invalid file yields a *ConfigError and no usable config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rubric config %s: %w", path, err)
	}

	var overlay fileConfig
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse rubric config JSON: %w", err)
	}

	cfg := Default()
	if overlay.Version != "" {
		cfg.Version = overlay.Version
	}
	if overlay.Dimensions != nil {
		cfg.Dimensions = overlay.Dimensions
	}
	if overlay.PersonaWeights != nil {
		cfg.PersonaWeights = overlay.PersonaWeights
	}
	if overlay.RedFlags != nil {
		cfg.RedFlags = overlay.RedFlags
	}
	if overlay.MinAnswerLength != nil {
		cfg.MinAnswerLength = *overlay.MinAnswerLength
	}
	if overlay.MaxPenalties != nil {
		cfg.MaxPenalties = *overlay.MaxPenalties
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
