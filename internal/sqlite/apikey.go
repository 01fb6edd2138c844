package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mfeldt/etude-mcp/internal/repository"
)

// KeyRepository implements repository.KeyRepository for SQLite
type KeyRepository struct {
	db *DB
}

// NewKeyRepository creates a new KeyRepository
func NewKeyRepository(db *DB) *KeyRepository {
	return &KeyRepository{db: db}
}

// Create inserts a new API key hash for a profile.
func (r *KeyRepository) Create(ctx context.Context, keyHash, profileID, description string) error {
	query := `
		INSERT INTO api_keys (key_hash, profile_id, created_at, description)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, keyHash, profileID, time.Now(), description)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create api key: %w", err)
	}
	return nil
}

// ProfileForHash returns the profile owning the given key hash.
func (r *KeyRepository) ProfileForHash(ctx context.Context, keyHash string) (string, error) {
	var profileID string
	err := r.db.QueryRowContext(ctx,
		`SELECT profile_id FROM api_keys WHERE key_hash = ?`, keyHash,
	).Scan(&profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up api key: %w", err)
	}
	return profileID, nil
}

// TouchLastUsed records that the key was just used. No-op for unknown hashes.
func (r *KeyRepository) TouchLastUsed(ctx context.Context, keyHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE api_keys SET last_used = ? WHERE key_hash = ?`, time.Now(), keyHash,
	)
	if err != nil {
		return fmt.Errorf("failed to touch api key: %w", err)
	}
	return nil
}
