package repository

import (
	"context"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
)

// SnapshotRepository persists full study-plan snapshots. A snapshot is the
// complete ordered lesson sequence for one storage key; Save overwrites
// whatever was stored before (last write wins).
type SnapshotRepository interface {
	Save(ctx context.Context, key string, lessons []lesson.Lesson) error
	Load(ctx context.Context, key string) ([]lesson.Lesson, error)
}

// KeyRepository manages API key persistence for HTTP-mode authentication.
// Keys are stored hashed; the plaintext token never reaches this layer.
type KeyRepository interface {
	Create(ctx context.Context, keyHash, profileID, description string) error
	ProfileForHash(ctx context.Context, keyHash string) (string, error)
	TouchLastUsed(ctx context.Context, keyHash string) error
}
