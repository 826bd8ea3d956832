package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/interview-coach/internal/scoring"
	"github.com/jonathan/interview-coach/internal/server/middleware"
	"github.com/jonathan/interview-coach/internal/synthesis"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleScore scores one answer under one persona and persists the result.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, firstValidationError(err))
		return
	}

	result := scoring.Score(scoring.Context{
		Answer:  req.Answer,
		Persona: req.Persona,
		Config:  s.rubricCfg,
	})

	evalID, err := s.evaluations.SaveEvaluation(r.Context(), userID,
		req.Answer.Metadata.QuestionID, string(req.Persona), req.Answer.Text, result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save evaluation")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"evaluation_id": evalID,
		"result":        result,
	})
}

// handleSynthesize builds core stories from an answer bank and persists the
// resulting story set.
func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, firstValidationError(err))
		return
	}

	output, err := synthesis.Synthesize(types.SynthesisInput{
		Answers:    req.Answers,
		Themes:     req.Themes,
		Persona:    req.Persona,
		MinStories: req.MinStories,
		MaxStories: req.MaxStories,
	})
	if err != nil {
		if errors.Is(err, synthesis.ErrInsufficientAnswers) || errors.Is(err, synthesis.ErrInsufficientThemes) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "synthesis failed")
		return
	}

	// Embellishment failures fall back to the templated variants silently.
	if req.Embellish && s.embellisher != nil {
		output.CoreStories = synthesis.EmbellishStories(r.Context(), s.embellisher, output.CoreStories)
	}

	setID, err := s.storySets.SaveStorySet(r.Context(), userID, string(req.Persona), output)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save story set")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"story_set_id": setID,
		"result":       output,
	})
}
