// Package session stores server-side session data and tracks the session of
// a single request.
package session

import (
	"context"
	"encoding/json"
	"time"

	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) service.SessionStore {
	return &redisStore{
		client: client,
		prefix: redisKeyPrefix,
	}
}

func (r *redisStore) key(id string) string {
	return r.prefix + id
}

func (r *redisStore) Load(ctx context.Context, id string) (map[string]string, error) {
	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}

	data := make(map[string]string)
	if err := json.Unmarshal(val, &data); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return data, nil
}

func (r *redisStore) Save(ctx context.Context, id string, data map[string]string, ttl time.Duration) error {
	if ttl <= 0 {
		return r.Delete(ctx, id)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := r.client.Set(ctx, r.key(id), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
