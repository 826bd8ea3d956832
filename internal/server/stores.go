package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/types"
)

// EvaluationStore persists and lists score results. Tests substitute an
// in-memory implementation.
type EvaluationStore interface {
	SaveEvaluation(ctx context.Context, userID uuid.UUID, questionID, persona, answerText string, result types.ScoreResult) (uuid.UUID, error)
	ListEvaluationsByQuestion(ctx context.Context, userID uuid.UUID, questionID string) ([]db.EvaluationRecord, error)
}

// StorySetStore persists and retrieves synthesis outputs.
type StorySetStore interface {
	SaveStorySet(ctx context.Context, userID uuid.UUID, persona string, output *types.SynthesisOutput) (uuid.UUID, error)
	GetStorySet(ctx context.Context, userID, setID uuid.UUID) (*db.StorySetRecord, error)
	ListStorySets(ctx context.Context, userID uuid.UUID) ([]db.StorySetRecord, error)
}
