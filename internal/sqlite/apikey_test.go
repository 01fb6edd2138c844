package sqlite

import (
	"context"
	"testing"

	"github.com/mfeldt/etude-mcp/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestKeyRepository_CreateAndResolve(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewKeyRepository(db)

	require.NoError(t, repo.Create(ctx, "hash1", "alice", "laptop"))

	profile, err := repo.ProfileForHash(ctx, "hash1")
	require.NoError(t, err)
	require.Equal(t, "alice", profile)
}

func TestKeyRepository_UnknownHash(t *testing.T) {
	db := NewTestDB(t)
	repo := NewKeyRepository(db)

	_, err := repo.ProfileForHash(context.Background(), "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKeyRepository_DuplicateHashConflicts(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewKeyRepository(db)

	require.NoError(t, repo.Create(ctx, "hash1", "alice", ""))
	err := repo.Create(ctx, "hash1", "bob", "")
	require.ErrorIs(t, err, repository.ErrConflict)
}

func TestKeyRepository_TouchLastUsed(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewKeyRepository(db)

	require.NoError(t, repo.Create(ctx, "hash1", "alice", ""))
	require.NoError(t, repo.TouchLastUsed(ctx, "hash1"))

	var lastUsed any
	err := db.QueryRowContext(ctx,
		`SELECT last_used FROM api_keys WHERE key_hash = ?`, "hash1",
	).Scan(&lastUsed)
	require.NoError(t, err)
	require.NotNil(t, lastUsed)

	// Unknown hashes are a silent no-op.
	require.NoError(t, repo.TouchLastUsed(ctx, "nope"))
}
