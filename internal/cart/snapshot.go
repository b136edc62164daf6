package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lmedina-dev/tastebite-backend/pkg/redis"
)

// Snapshot is the serialized form of a cart. Persistence happens only through
// this boundary; the engine itself never touches storage.
type Snapshot struct {
	Items []LineItem `json:"items"`
}

// Snapshot captures the current cart state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{Items: e.Items()}
}

// RestoreEngine rebuilds an engine from a snapshot, preserving item order.
func RestoreEngine(snap Snapshot) *Engine {
	return &Engine{items: append([]LineItem(nil), snap.Items...)}
}

// SnapshotStore persists cart snapshots per session.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) (*Snapshot, error)
	Save(ctx context.Context, sessionID string, snap Snapshot) error
	Clear(ctx context.Context, sessionID string) error
}

type redisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore builds a snapshot store on the shared redis client.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) (SnapshotStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisSnapshotStore{client: client, ttl: ttl}, nil
}

// Load returns the stored snapshot, or nil when the session has no cart yet.
func (s *redisSnapshotStore) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading cart snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decoding cart snapshot: %w", err)
	}
	return &snap, nil
}

func (s *redisSnapshotStore) Save(ctx context.Context, sessionID string, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(sessionID), payload, s.ttl); err != nil {
		return fmt.Errorf("saving cart snapshot: %w", err)
	}
	return nil
}

func (s *redisSnapshotStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.CartKey(sessionID)); err != nil {
		return fmt.Errorf("clearing cart snapshot: %w", err)
	}
	return nil
}
