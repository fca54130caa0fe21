// Package prefs is the client-side favorites/following store. The lists are
// purely local state keyed by user id; the server has no representation of
// them and they are never validated against it.
package prefs

import (
	"context"
	"encoding/json"
	"time"
)

const (
	favoritesPrefix = "nexus:favorites:"
	followingPrefix = "nexus:following:"
)

// KV is the minimal key-value surface the store persists through. The redis
// cache client satisfies it; tests use an in-memory map.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Store keeps per-user favorite slugs and followed usernames. Reads fall back
// to an empty list and writes swallow storage errors, so a broken backend
// degrades to "no preferences" instead of failing the caller.
type Store struct {
	kv KV
}

// NewStore creates a preference store over the given key-value backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// FavoritesKey returns the storage key for a user's favorite slugs.
func FavoritesKey(userID string) string {
	return favoritesPrefix + userID
}

// FollowingKey returns the storage key for a user's followed usernames.
func FollowingKey(userID string) string {
	return followingPrefix + userID
}

// Favorites returns the user's favorite article slugs.
func (s *Store) Favorites(ctx context.Context, userID string) []string {
	return s.read(ctx, FavoritesKey(userID))
}

// SetFavorites replaces the user's favorite article slugs.
func (s *Store) SetFavorites(ctx context.Context, userID string, slugs []string) {
	s.write(ctx, FavoritesKey(userID), slugs)
}

// ToggleFavorite adds or removes a slug and returns the resulting list.
func (s *Store) ToggleFavorite(ctx context.Context, userID, slug string) []string {
	next := toggle(s.Favorites(ctx, userID), slug)
	s.SetFavorites(ctx, userID, next)
	return next
}

// Following returns the usernames the user follows.
func (s *Store) Following(ctx context.Context, userID string) []string {
	return s.read(ctx, FollowingKey(userID))
}

// SetFollowing replaces the usernames the user follows.
func (s *Store) SetFollowing(ctx context.Context, userID string, usernames []string) {
	s.write(ctx, FollowingKey(userID), usernames)
}

// ToggleFollowing adds or removes a username and returns the resulting list.
func (s *Store) ToggleFollowing(ctx context.Context, userID, username string) []string {
	next := toggle(s.Following(ctx, userID), username)
	s.SetFollowing(ctx, userID, next)
	return next
}

func (s *Store) read(ctx context.Context, key string) []string {
	data, err := s.kv.Get(ctx, key)
	if err != nil || data == nil {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return []string{}
	}
	return values
}

func (s *Store) write(ctx context.Context, key string, values []string) {
	payload, err := json.Marshal(values)
	if err != nil {
		return
	}
	_ = s.kv.Set(ctx, key, payload, 0)
}

func toggle(values []string, value string) []string {
	next := make([]string, 0, len(values)+1)
	found := false
	for _, v := range values {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
	}
	return next
}
