package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/interview-coach/internal/types"
)

// SaveStorySet stores a synthesis output for a user and returns the row ID.
func (db *DB) SaveStorySet(ctx context.Context, userID uuid.UUID, persona string, output *types.SynthesisOutput) (uuid.UUID, error) {
	content, err := json.Marshal(output)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal story set: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO story_sets (user_id, persona, story_count, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, persona, len(output.CoreStories), content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save story set: %w", err)
	}
	return id, nil
}

// GetStorySet retrieves one of a user's story sets by ID. Returns nil when
// no row exists.
func (db *DB) GetStorySet(ctx context.Context, userID, setID uuid.UUID) (*StorySetRecord, error) {
	var rec StorySetRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, persona, story_count, content, created_at
		 FROM story_sets WHERE id = $1 AND user_id = $2`,
		setID, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Persona, &rec.StoryCount, &rec.Content, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get story set: %w", err)
	}
	return &rec, nil
}

// ListStorySets lists a user's story sets, newest first, without content.
func (db *DB) ListStorySets(ctx context.Context, userID uuid.UUID) ([]StorySetRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, persona, story_count, created_at
		 FROM story_sets WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list story sets: %w", err)
	}
	defer rows.Close()

	var records []StorySetRecord
	for rows.Next() {
		var rec StorySetRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Persona, &rec.StoryCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan story set: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read story sets: %w", err)
	}
	return records, nil
}
