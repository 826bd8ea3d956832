package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonaIsValid(t *testing.T) {
	for _, persona := range AllPersonas() {
		assert.True(t, persona.IsValid(), "persona %s", persona)
	}
	assert.False(t, Persona("").IsValid())
	assert.False(t, Persona("interviewer").IsValid())
	assert.False(t, Persona("Recruiter").IsValid())
}

func TestDimensionIsValid(t *testing.T) {
	for _, dim := range AllDimensions() {
		assert.True(t, dim.IsValid(), "dimension %s", dim)
	}
	assert.False(t, Dimension("charisma").IsValid())
	assert.False(t, Dimension("").IsValid())
}

func TestAllDimensions_SevenFixedAxes(t *testing.T) {
	assert.Len(t, AllDimensions(), 7)
}

func TestHasTheme(t *testing.T) {
	item := AnswerItem{
		ID:       "a1",
		Text:     "text",
		Metadata: AnswerMetadata{Themes: []string{"leadership", "conflict"}},
	}

	assert.True(t, item.HasTheme("leadership"))
	assert.False(t, item.HasTheme("Leadership"))
	assert.False(t, item.HasTheme("failure"))

	var empty AnswerItem
	assert.False(t, empty.HasTheme("leadership"))
}
