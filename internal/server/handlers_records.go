package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/server/middleware"
)

// evaluationDTO is the wire shape for a stored evaluation.
type evaluationDTO struct {
	ID         uuid.UUID       `json:"id"`
	QuestionID string          `json:"question_id,omitempty"`
	Persona    string          `json:"persona"`
	AnswerText string          `json:"answer_text"`
	Result     json.RawMessage `json:"result"`
	CreatedAt  time.Time       `json:"created_at"`
}

// storySetDTO is the wire shape for a stored story set. Content is omitted
// in list responses.
type storySetDTO struct {
	ID         uuid.UUID       `json:"id"`
	Persona    string          `json:"persona"`
	StoryCount int             `json:"story_count"`
	Content    json.RawMessage `json:"content,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// handleListEvaluations lists the caller's evaluations, optionally filtered
// by question_id.
func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	questionID := r.URL.Query().Get("question_id")
	records, err := s.evaluations.ListEvaluationsByQuestion(r.Context(), userID, questionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list evaluations")
		return
	}

	dtos := make([]evaluationDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, evaluationDTO{
			ID:         rec.ID,
			QuestionID: rec.QuestionID,
			Persona:    rec.Persona,
			AnswerText: rec.AnswerText,
			Result:     json.RawMessage(rec.Result),
			CreatedAt:  rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"evaluations": dtos})
}

// handleListStorySets lists the caller's story sets without content.
func (s *Server) handleListStorySets(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := s.storySets.ListStorySets(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list story sets")
		return
	}

	dtos := make([]storySetDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, storySetDTO{
			ID:         rec.ID,
			Persona:    rec.Persona,
			StoryCount: rec.StoryCount,
			CreatedAt:  rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"story_sets": dtos})
}

// handleGetStorySet returns one story set with its full content.
func (s *Server) handleGetStorySet(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	setID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid story set id")
		return
	}

	rec, err := s.storySets.GetStorySet(r.Context(), userID, setID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get story set")
		return
	}
	if rec == nil {
		notFound := &ErrStorySetNotFound{SetID: setID}
		writeError(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, storySetDTO{
		ID:         rec.ID,
		Persona:    rec.Persona,
		StoryCount: rec.StoryCount,
		Content:    json.RawMessage(rec.Content),
		CreatedAt:  rec.CreatedAt,
	})
}
