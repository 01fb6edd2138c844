package mocks

import (
	"context"

	"github.com/mfeldt/etude-mcp/internal/domain/lesson"
	"github.com/stretchr/testify/mock"
)

// SnapshotRepository is a mock for repository.SnapshotRepository.
type SnapshotRepository struct {
	mock.Mock
}

func (m *SnapshotRepository) Save(ctx context.Context, key string, lessons []lesson.Lesson) error {
	args := m.Called(ctx, key, lessons)
	return args.Error(0)
}

func (m *SnapshotRepository) Load(ctx context.Context, key string) ([]lesson.Lesson, error) {
	args := m.Called(ctx, key)
	if ls, ok := args.Get(0).([]lesson.Lesson); ok {
		return ls, args.Error(1)
	}
	return nil, args.Error(1)
}

// KeyRepository is a mock for repository.KeyRepository.
type KeyRepository struct {
	mock.Mock
}

func (m *KeyRepository) Create(ctx context.Context, keyHash, profileID, description string) error {
	args := m.Called(ctx, keyHash, profileID, description)
	return args.Error(0)
}

func (m *KeyRepository) ProfileForHash(ctx context.Context, keyHash string) (string, error) {
	args := m.Called(ctx, keyHash)
	return args.String(0), args.Error(1)
}

func (m *KeyRepository) TouchLastUsed(ctx context.Context, keyHash string) error {
	args := m.Called(ctx, keyHash)
	return args.Error(0)
}
