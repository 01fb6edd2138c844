package sqlite

import (
	"context"
	"testing"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/mfeldt/etude-mcp/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_SaveLoadRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(db)

	lessons := []lesson.Lesson{
		{ID: "a", Title: "Intervals", URL: lesson.DefaultURL, Tags: []string{"basics"}, Notes: "review", Done: true},
		{ID: "b", Title: "Cadences", URL: "https://example.com/cadences", Tags: []string{}},
	}

	require.NoError(t, repo.Save(ctx, "etude.plan.v1:default", lessons))

	got, err := repo.Load(ctx, "etude.plan.v1:default")
	require.NoError(t, err)
	require.Equal(t, lessons, got)
}

func TestSnapshotRepository_SaveOverwrites(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(db)

	key := "etude.plan.v1:default"
	require.NoError(t, repo.Save(ctx, key, []lesson.Lesson{{ID: "a", Title: "First"}}))
	require.NoError(t, repo.Save(ctx, key, []lesson.Lesson{{ID: "b", Title: "Second"}}))

	got, err := repo.Load(ctx, key)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].ID)
}

func TestSnapshotRepository_LoadMissingKey(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSnapshotRepository(db)

	_, err := repo.Load(context.Background(), "etude.plan.v1:nobody")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotRepository_LoadCorruptPayload(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(db)

	_, err := db.ExecContext(ctx,
		`INSERT INTO plan_snapshots (storage_key, payload) VALUES (?, ?)`,
		"etude.plan.v1:default", "{not json",
	)
	require.NoError(t, err)

	_, err = repo.Load(ctx, "etude.plan.v1:default")
	require.Error(t, err)
	require.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotRepository_EmptyPlanStaysEmpty(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(db)

	require.NoError(t, repo.Save(ctx, "etude.plan.v1:default", nil))

	got, err := repo.Load(ctx, "etude.plan.v1:default")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSnapshotRepository_KeysAreIsolated(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSnapshotRepository(db)

	require.NoError(t, repo.Save(ctx, "etude.plan.v1:alice", []lesson.Lesson{{ID: "a", Title: "Modes"}}))
	require.NoError(t, repo.Save(ctx, "etude.plan.v1:bob", []lesson.Lesson{{ID: "b", Title: "Triads"}}))

	alice, err := repo.Load(ctx, "etude.plan.v1:alice")
	require.NoError(t, err)
	require.Equal(t, "Modes", alice[0].Title)

	bob, err := repo.Load(ctx, "etude.plan.v1:bob")
	require.NoError(t, err)
	require.Equal(t, "Triads", bob[0].Title)
}
