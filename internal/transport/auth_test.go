package transport

import (
	"context"
	"testing"

	"github.com/mfeldt/etude-mcp/internal/repository"
	"github.com/mfeldt/etude-mcp/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolver_ResolvesProfile(t *testing.T) {
	keys := new(mocks.KeyRepository)
	keys.On("ProfileForHash", mock.Anything, HashToken("token")).Return("alice", nil).Once()
	keys.On("TouchLastUsed", mock.Anything, HashToken("token")).Return(nil).Once()

	resolver := NewResolver(keys)
	profile, err := resolver.ResolveProfile(context.Background(), "token")
	require.NoError(t, err)
	require.Equal(t, "alice", profile)
	keys.AssertExpectations(t)
}

func TestResolver_UnknownToken(t *testing.T) {
	keys := new(mocks.KeyRepository)
	keys.On("ProfileForHash", mock.Anything, mock.Anything).Return("", repository.ErrNotFound)

	resolver := NewResolver(keys)
	_, err := resolver.ResolveProfile(context.Background(), "bogus")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolver_TouchFailureDoesNotFailAuth(t *testing.T) {
	keys := new(mocks.KeyRepository)
	keys.On("ProfileForHash", mock.Anything, mock.Anything).Return("alice", nil)
	keys.On("TouchLastUsed", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

	resolver := NewResolver(keys)
	profile, err := resolver.ResolveProfile(context.Background(), "token")
	require.NoError(t, err)
	require.Equal(t, "alice", profile)
}

func TestHashToken_StableAndOpaque(t *testing.T) {
	require.Equal(t, HashToken("token"), HashToken("token"))
	require.NotEqual(t, HashToken("token"), HashToken("other"))
	require.Len(t, HashToken("token"), 64)
	require.NotContains(t, HashToken("token"), "token")
}
