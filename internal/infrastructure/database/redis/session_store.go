// internal/infrastructure/database/redis/session_store.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zyra-atelier/storefront/internal/domain/session"
)

const maxUpdateRetries = 10

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// ErrConflict is returned when a session kept changing under an update
// for every retry
var ErrConflict = errors.New("session update conflict")

// SessionStore keeps sessions as JSON under session:<id>. Every write
// renews the TTL.
type SessionStore struct {
	client *Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed session store
func NewSessionStore(client *Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *SessionStore) Create(ctx context.Context, st session.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.client.Redis.Set(ctx, sessionKey(st.ID), data, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (session.State, error) {
	return s.load(ctx, s.client.Redis, id)
}

// Update runs fn inside WATCH/MULTI and retries when another writer changed
// the session first
func (s *SessionStore) Update(ctx context.Context, id string, fn session.UpdateFunc) (session.State, error) {
	key := sessionKey(id)
	var result session.State

	txf := func(tx *redis.Tx) error {
		current, err := s.load(ctx, tx, id)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Redis.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return session.State{}, err
		}
		return result, nil
	}

	return session.State{}, fmt.Errorf("%w: %s", ErrConflict, id)
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Redis.Del(ctx, sessionKey(id)).Err()
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *SessionStore) load(ctx context.Context, r getter, id string) (session.State, error) {
	data, err := r.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.State{}, session.ErrNotFound
	}
	if err != nil {
		return session.State{}, fmt.Errorf("failed to load session: %w", err)
	}

	var st session.State
	if err := json.Unmarshal(data, &st); err != nil {
		return session.State{}, fmt.Errorf("failed to decode session: %w", err)
	}
	return st, nil
}
