package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/rubric"
	"github.com/jonathan/interview-coach/internal/server/middleware"
	"github.com/jonathan/interview-coach/internal/types"
)

// memEvaluationStore is an in-memory EvaluationStore for handler tests.
type memEvaluationStore struct {
	records []db.EvaluationRecord
	failing bool
}

func (m *memEvaluationStore) SaveEvaluation(_ context.Context, userID uuid.UUID, questionID, persona, answerText string, result types.ScoreResult) (uuid.UUID, error) {
	if m.failing {
		return uuid.Nil, fmt.Errorf("store unavailable")
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, err
	}
	rec := db.EvaluationRecord{
		ID:         uuid.New(),
		UserID:     userID,
		QuestionID: questionID,
		Persona:    persona,
		AnswerText: answerText,
		Result:     payload,
		CreatedAt:  time.Now(),
	}
	m.records = append(m.records, rec)
	return rec.ID, nil
}

func (m *memEvaluationStore) ListEvaluationsByQuestion(_ context.Context, userID uuid.UUID, questionID string) ([]db.EvaluationRecord, error) {
	if m.failing {
		return nil, fmt.Errorf("store unavailable")
	}
	var out []db.EvaluationRecord
	for _, rec := range m.records {
		if rec.UserID != userID {
			continue
		}
		if questionID != "" && rec.QuestionID != questionID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// memStorySetStore is an in-memory StorySetStore for handler tests.
type memStorySetStore struct {
	records []db.StorySetRecord
}

func (m *memStorySetStore) SaveStorySet(_ context.Context, userID uuid.UUID, persona string, output *types.SynthesisOutput) (uuid.UUID, error) {
	payload, err := json.Marshal(output)
	if err != nil {
		return uuid.Nil, err
	}
	rec := db.StorySetRecord{
		ID:         uuid.New(),
		UserID:     userID,
		Persona:    persona,
		StoryCount: len(output.CoreStories),
		Content:    payload,
		CreatedAt:  time.Now(),
	}
	m.records = append(m.records, rec)
	return rec.ID, nil
}

func (m *memStorySetStore) GetStorySet(_ context.Context, userID, setID uuid.UUID) (*db.StorySetRecord, error) {
	for i := range m.records {
		if m.records[i].UserID == userID && m.records[i].ID == setID {
			copied := m.records[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStorySetStore) ListStorySets(_ context.Context, userID uuid.UUID) ([]db.StorySetRecord, error) {
	var out []db.StorySetRecord
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func testServer(t *testing.T) (*Server, *memEvaluationStore, *memStorySetStore) {
	t.Helper()
	cfg := rubric.Default()
	require.NoError(t, cfg.Validate())

	evals := &memEvaluationStore{}
	sets := &memStorySetStore{}
	return &Server{rubricCfg: cfg, evaluations: evals, storySets: sets}, evals, sets
}

func authedRequest(method, target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey(), userID))
}

const scoreBody = `{
	"answer": {
		"id": "a1",
		"text": "Last year I led the migration. I reduced costs by 20% and the team shipped on time.",
		"metadata": {"question_id": "q-7"}
	},
	"persona": "hiring-manager"
}`

func TestHandleScore_PersistsAndReturnsResult(t *testing.T) {
	srv, evals, _ := testServer(t)
	userID := uuid.New()

	rec := httptest.NewRecorder()
	srv.handleScore(rec, authedRequest(http.MethodPost, "/score", scoreBody, userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		EvaluationID uuid.UUID         `json:"evaluation_id"`
		Result       types.ScoreResult `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEqual(t, uuid.Nil, resp.EvaluationID)
	assert.GreaterOrEqual(t, resp.Result.Overall, 0)
	assert.LessOrEqual(t, resp.Result.Overall, 100)
	assert.Len(t, resp.Result.PerDimension, 7)

	require.Len(t, evals.records, 1)
	assert.Equal(t, userID, evals.records[0].UserID)
	assert.Equal(t, "q-7", evals.records[0].QuestionID)
	assert.Equal(t, "hiring-manager", evals.records[0].Persona)
}

func TestHandleScore_RejectsUnknownPersona(t *testing.T) {
	srv, _, _ := testServer(t)

	body := `{"answer": {"id": "a1", "text": "text"}, "persona": "interviewer"}`
	rec := httptest.NewRecorder()
	srv.handleScore(rec, authedRequest(http.MethodPost, "/score", body, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScore_RequiresAuthContext(t *testing.T) {
	srv, _, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(scoreBody))
	rec := httptest.NewRecorder()
	srv.handleScore(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleScore_StoreFailure(t *testing.T) {
	srv, evals, _ := testServer(t)
	evals.failing = true

	rec := httptest.NewRecorder()
	srv.handleScore(rec, authedRequest(http.MethodPost, "/score", scoreBody, uuid.New()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

const synthesizeBody = `{
	"answers": [
		{"id": "a1", "text": "Last year I led a migration. We cut costs by 20%.", "metadata": {"themes": ["leadership"]}},
		{"id": "a2", "text": "I resolved a conflict between two teams. We delivered on time.", "metadata": {"themes": ["conflict"]}},
		{"id": "a3", "text": "I mentored two engineers. Both were promoted within a year.", "metadata": {"themes": ["leadership"]}}
	],
	"themes": ["leadership", "conflict"],
	"persona": "peer"
}`

func TestHandleSynthesize_PersistsStorySet(t *testing.T) {
	srv, _, sets := testServer(t)
	userID := uuid.New()

	rec := httptest.NewRecorder()
	srv.handleSynthesize(rec, authedRequest(http.MethodPost, "/synthesize", synthesizeBody, userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		StorySetID uuid.UUID             `json:"story_set_id"`
		Result     types.SynthesisOutput `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEqual(t, uuid.Nil, resp.StorySetID)
	assert.NotEmpty(t, resp.Result.CoreStories)

	require.Len(t, sets.records, 1)
	assert.Equal(t, userID, sets.records[0].UserID)
	assert.Equal(t, "peer", sets.records[0].Persona)
	assert.Equal(t, len(resp.Result.CoreStories), sets.records[0].StoryCount)
}

func TestHandleSynthesize_ContractErrorsAreBadRequests(t *testing.T) {
	srv, _, _ := testServer(t)

	body := `{
		"answers": [
			{"id": "a1", "text": "one"},
			{"id": "a2", "text": "two"}
		],
		"themes": ["leadership", "conflict"],
		"persona": "peer"
	}`
	rec := httptest.NewRecorder()
	srv.handleSynthesize(rec, authedRequest(http.MethodPost, "/synthesize", body, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 3 answers")
}

func TestHandleListEvaluations_FiltersByQuestion(t *testing.T) {
	srv, evals, _ := testServer(t)
	userID := uuid.New()

	for _, q := range []string{"q-1", "q-2", "q-1"} {
		_, err := evals.SaveEvaluation(context.Background(), userID, q, "peer", "text", types.ScoreResult{})
		require.NoError(t, err)
	}
	_, err := evals.SaveEvaluation(context.Background(), uuid.New(), "q-1", "peer", "text", types.ScoreResult{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.handleListEvaluations(rec, authedRequest(http.MethodGet, "/evaluations?question_id=q-1", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Evaluations []evaluationDTO `json:"evaluations"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Evaluations, 2)
	for _, dto := range resp.Evaluations {
		assert.Equal(t, "q-1", dto.QuestionID)
	}
}

func TestHandleGetStorySet_ScopedToUser(t *testing.T) {
	srv, _, sets := testServer(t)
	owner := uuid.New()

	setID, err := sets.SaveStorySet(context.Background(), owner, "peer", &types.SynthesisOutput{Version: "synthesis-v2"})
	require.NoError(t, err)

	req := authedRequest(http.MethodGet, "/story-sets/"+setID.String(), "", owner)
	req.SetPathValue("id", setID.String())
	rec := httptest.NewRecorder()
	srv.handleGetStorySet(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto storySetDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, setID, dto.ID)
	assert.NotEmpty(t, dto.Content)

	// Another user cannot fetch it.
	req = authedRequest(http.MethodGet, "/story-sets/"+setID.String(), "", uuid.New())
	req.SetPathValue("id", setID.String())
	rec = httptest.NewRecorder()
	srv.handleGetStorySet(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetStorySet_InvalidID(t *testing.T) {
	srv, _, _ := testServer(t)

	req := authedRequest(http.MethodGet, "/story-sets/not-a-uuid", "", uuid.New())
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()
	srv.handleGetStorySet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListStorySets_OmitsContent(t *testing.T) {
	srv, _, sets := testServer(t)
	userID := uuid.New()

	_, err := sets.SaveStorySet(context.Background(), userID, "recruiter", &types.SynthesisOutput{
		CoreStories: []types.CoreStory{{ID: "s1"}},
		Version:     "synthesis-v2",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.handleListStorySets(rec, authedRequest(http.MethodGet, "/story-sets", "", userID))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		StorySets []storySetDTO `json:"story_sets"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.StorySets, 1)
	assert.Equal(t, 1, resp.StorySets[0].StoryCount)
	assert.Empty(t, resp.StorySets[0].Content)
}

func TestHandleHealth(t *testing.T) {
	srv, _, _ := testServer(t)

	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleGetRubric_ServesActiveConfig(t *testing.T) {
	srv, _, _ := testServer(t)

	rec := httptest.NewRecorder()
	srv.handleGetRubric(rec, httptest.NewRequest(http.MethodGet, "/rubric", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var cfg rubric.Config
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cfg))
	assert.Equal(t, "score-v2", cfg.Version)
	assert.Len(t, cfg.Dimensions, 7)
}
