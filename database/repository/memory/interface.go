package memoryRepo

import (
	"context"

	"konoba/database"
	"konoba/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryRepository stores durable guest facts for recall in later
// conversations.
type MemoryRepository interface {
	Add(ctx context.Context, entry models.MemoryEntry) (string, error)
	GetByUserID(ctx context.Context, userID string, limit int64) ([]models.MemoryEntry, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type mongoMemoryRepo struct {
	coll *mongo.Collection
}

// NewMongoMemoryRepo returns a MemoryRepository backed by MongoDB.
func NewMongoMemoryRepo() MemoryRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoMemoryRepo{
		coll: db.Collection("guest_memories"),
	}
}
