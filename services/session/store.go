package session

import (
	"context"
	"fmt"

	sessionRepo "konoba/database/repository/session"
	"konoba/models"
	"konoba/utils"

	"go.uber.org/zap"
)

// DefaultSessionStore is a write-through layering of the Redis cache over the
// durable Mongo repository. Loads hit Redis first and rehydrate it on a miss.
// Writes are last-write-wins with no cross-turn locking: two racing turns for
// the same user can silently lose one turn's effect.
type DefaultSessionStore struct {
	Cache *RedisSessionStore
	Repo  sessionRepo.SessionStateRepository
}

func (s *DefaultSessionStore) Load(ctx context.Context, userID string) (*models.SessionState, error) {
	state, err := s.Cache.Load(ctx, userID)
	if err != nil {
		// Redis being down degrades to the durable store.
		utils.GetLogger().Warn("session cache read failed", zap.Error(err))
	}
	if state != nil {
		return state, nil
	}

	state, err = s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session state: %w", err)
	}
	if state != nil {
		if err := s.Cache.Save(ctx, state); err != nil {
			utils.GetLogger().Warn("session cache rehydrate failed", zap.Error(err))
		}
	}
	return state, nil
}

func (s *DefaultSessionStore) Save(ctx context.Context, state *models.SessionState) error {
	if err := s.Repo.Upsert(ctx, state); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	if err := s.Cache.Save(ctx, state); err != nil {
		utils.GetLogger().Warn("session cache write failed", zap.Error(err))
	}
	return nil
}

func (s *DefaultSessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete session state: %w", err)
	}
	if err := s.Cache.Delete(ctx, userID); err != nil {
		utils.GetLogger().Warn("session cache delete failed", zap.Error(err))
	}
	return nil
}
