package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs an immediate health check, then keeps the
// in-memory snapshot fresh on a fixed interval.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	ctx := context.Background()

	storeHealth(checkHealth(ctx, redisClients, mongoClient))

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			storeHealth(checkHealth(ctx, redisClients, mongoClient))
		}
	}()
}

func checkHealth(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	var redisHealth []bool
	for _, client := range redisClients {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		redisHealth = append(redisHealth, client.Ping(pingCtx).Err() == nil)
		cancel()
	}

	mongoOK := false
	if mongoClient != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		mongoOK = mongoClient.Ping(pingCtx, nil) == nil
		cancel()
	}

	return HealthStatus{
		Mongo:     mongoOK,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
}

func storeHealth(status HealthStatus) {
	mu.Lock()
	currentHealth = status
	mu.Unlock()
}
