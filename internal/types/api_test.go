package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRequestValidate(t *testing.T) {
	valid := ScoreRequest{
		Answer:  AnswerItem{ID: "a1", Text: "a full answer"},
		Persona: PersonaPeer,
	}
	assert.NoError(t, valid.Validate())

	missingPersona := ScoreRequest{Answer: AnswerItem{ID: "a1", Text: "text"}}
	assert.Error(t, missingPersona.Validate())

	badPersona := ScoreRequest{
		Answer:  AnswerItem{ID: "a1", Text: "text"},
		Persona: Persona("interviewer"),
	}
	assert.Error(t, badPersona.Validate())
}

func TestSynthesizeRequestValidate(t *testing.T) {
	valid := SynthesizeRequest{
		Answers: []AnswerItem{{ID: "a1", Text: "text"}},
		Themes:  []string{"leadership"},
		Persona: PersonaRecruiter,
	}
	require.NoError(t, valid.Validate())

	valid.MinStories = 2
	valid.MaxStories = 5
	assert.NoError(t, valid.Validate())
}

func TestSynthesizeRequestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  SynthesizeRequest
	}{
		{
			name: "missing answers",
			req: SynthesizeRequest{
				Themes:  []string{"leadership"},
				Persona: PersonaPeer,
			},
		},
		{
			name: "missing themes",
			req: SynthesizeRequest{
				Answers: []AnswerItem{{ID: "a1", Text: "text"}},
				Persona: PersonaPeer,
			},
		},
		{
			name: "unknown persona",
			req: SynthesizeRequest{
				Answers: []AnswerItem{{ID: "a1", Text: "text"}},
				Themes:  []string{"leadership"},
				Persona: Persona("candidate"),
			},
		},
		{
			name: "negative minimum",
			req: SynthesizeRequest{
				Answers:    []AnswerItem{{ID: "a1", Text: "text"}},
				Themes:     []string{"leadership"},
				Persona:    PersonaPeer,
				MinStories: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}
