package memoryRepo

import (
	"context"
	"time"

	"konoba/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Add inserts a new memory entry and returns its ID.
func (r *mongoMemoryRepo) Add(ctx context.Context, entry models.MemoryEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// GetByUserID returns a guest's memories, newest first, capped at limit.
func (r *mongoMemoryRepo) GetByUserID(ctx context.Context, userID string, limit int64) ([]models.MemoryEntry, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.MemoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteByUserID wipes everything remembered about one guest.
func (r *mongoMemoryRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
