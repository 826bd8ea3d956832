package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/types"
)

// SaveEvaluation stores a scored answer for a user and returns the row ID.
func (db *DB) SaveEvaluation(ctx context.Context, userID uuid.UUID, questionID, persona, answerText string, result types.ScoreResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evaluations (user_id, question_id, persona, answer_text, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, questionID, persona, answerText, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// ListEvaluationsByQuestion lists a user's evaluations, newest first. An
// empty questionID returns all of the user's evaluations.
func (db *DB) ListEvaluationsByQuestion(ctx context.Context, userID uuid.UUID, questionID string) ([]EvaluationRecord, error) {
	query := `SELECT id, user_id, question_id, persona, answer_text, result, created_at
	          FROM evaluations WHERE user_id = $1`
	args := []any{userID}
	if questionID != "" {
		query += ` AND question_id = $2`
		args = append(args, questionID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var records []EvaluationRecord
	for rows.Next() {
		var rec EvaluationRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.QuestionID, &rec.Persona,
			&rec.AnswerText, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read evaluations: %w", err)
	}
	return records, nil
}
