package transport

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/mfeldt/etude-mcp/internal/repository"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

// HashToken returns the stored form of an API token. Only the hash ever
// reaches persistence.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Resolver resolves bearer tokens to profile IDs against the key repository.
type Resolver struct {
	keys repository.KeyRepository
}

// NewResolver creates a Resolver backed by the given key repository.
func NewResolver(keys repository.KeyRepository) *Resolver {
	return &Resolver{keys: keys}
}

// ResolveProfile returns the profile owning the token. Any lookup failure is
// reported as ErrUnauthorized; callers learn nothing about why.
func (r *Resolver) ResolveProfile(ctx context.Context, token string) (string, error) {
	hash := HashToken(token)
	profile, err := r.keys.ProfileForHash(ctx, hash)
	if err != nil || profile == "" {
		return "", ErrUnauthorized
	}
	// Best effort; an unrecorded last_used never fails a request.
	_ = r.keys.TouchLastUsed(ctx, hash)
	return profile, nil
}
