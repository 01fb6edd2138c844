package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/mfeldt/etude-mcp/internal/repository"
)

// SnapshotRepository implements repository.SnapshotRepository for SQLite
type SnapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save stores the full lesson sequence under the given key, replacing any
// previous snapshot for that key.
func (r *SnapshotRepository) Save(ctx context.Context, key string, lessons []lesson.Lesson) error {
	if lessons == nil {
		lessons = []lesson.Lesson{}
	}
	payload, err := json.Marshal(lessons)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO plan_snapshots (storage_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(storage_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, key, string(payload), time.Now()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load returns the lesson sequence stored under the given key.
// A missing row is repository.ErrNotFound; a payload that does not decode as
// the interchange shape is an error the caller may treat as "no prior state".
func (r *SnapshotRepository) Load(ctx context.Context, key string) ([]lesson.Lesson, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM plan_snapshots WHERE storage_key = ?`, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var lessons []lesson.Lesson
	if err := json.Unmarshal([]byte(payload), &lessons); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if lessons == nil {
		lessons = []lesson.Lesson{}
	}
	return lessons, nil
}
