package sessionRepo

import (
	"context"
	"time"

	"konoba/database"
	"konoba/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SessionStateRepository is the durable row-per-user store for conversation
// state, letting any stateless worker resume a conversation.
type SessionStateRepository interface {
	Get(ctx context.Context, userID string) (*models.SessionState, error)
	Upsert(ctx context.Context, state *models.SessionState) error
	Delete(ctx context.Context, userID string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo returns a SessionStateRepository backed by MongoDB.
func NewMongoSessionRepo() SessionStateRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSessionRepo{
		coll: db.Collection("session_states"),
	}
}
