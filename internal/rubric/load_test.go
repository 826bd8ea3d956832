package rubric

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rubric.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_EmptyOverlayKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "score-v2", cfg.Version)
	assert.Equal(t, 20, cfg.MinAnswerLength)
	assert.Equal(t, 30, cfg.MaxPenalties)
	assert.Len(t, cfg.CeilingRules, 4)
}

func TestLoad_OverridesScalars(t *testing.T) {
	path := writeConfigFile(t, `{"version": "score-custom", "min_answer_length": 40, "max_penalties": 25}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "score-custom", cfg.Version)
	assert.Equal(t, 40, cfg.MinAnswerLength)
	assert.Equal(t, 25, cfg.MaxPenalties)
	// Untouched sections keep their defaults.
	assert.Len(t, cfg.Dimensions, 7)
}

func TestLoad_ReplacesRedFlagsWholesale(t *testing.T) {
	path := writeConfigFile(t, `{"red_flags": [{"name": "only-flag", "penalty": -5, "keywords": ["um"]}]}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.RedFlags, 1)
	assert.Equal(t, "only-flag", cfg.RedFlags[0].Name)
}

func TestLoad_RejectsInvalidMergedConfig(t *testing.T) {
	path := writeConfigFile(t, `{"red_flags": [{"name": "too-harsh", "penalty": -50, "keywords": ["x"]}]}`)

	_, err := Load(path)
	require.Error(t, err)

	var configErr *ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoad_RejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoad_CannotChangeCeilingRules(t *testing.T) {
	// Ceiling rules are code; a file mentioning them is simply ignored.
	path := writeConfigFile(t, `{"ceiling_rules": [{"name": "bogus"}]}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	for _, rule := range cfg.CeilingRules {
		assert.NotEqual(t, "bogus", rule.Name)
	}
}
