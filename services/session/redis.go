package session

import (
	"context"
	"encoding/json"
	"time"

	"konoba/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "chat:session:"

// RedisSessionStore keeps one JSON session blob per user with a TTL. It is
// the hot path; a durable repository behind it survives Redis restarts.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Load(ctx context.Context, userID string) (*models.SessionState, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state models.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, state *models.SessionState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+state.UserID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+userID).Err()
}
