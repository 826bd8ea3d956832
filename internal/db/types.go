package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user row, including the password hash. Handlers must not
// serialize this type directly; convert to types.User first.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	PasswordSet  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EvaluationRecord is a persisted answer evaluation: the answer text, the
// persona it was scored for, and the full score result as JSON.
type EvaluationRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	QuestionID string
	Persona    string
	AnswerText string
	Result     []byte // ScoreResult JSON
	CreatedAt  time.Time
}

// StorySetRecord is a persisted synthesis output: the full SynthesisOutput
// as JSON plus enough columns to list sets without unmarshaling.
type StorySetRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Persona    string
	StoryCount int
	Content    []byte // SynthesisOutput JSON
	CreatedAt  time.Time
}
