package sessionRepo

import (
	"context"
	"errors"
	"time"

	"konoba/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sessionDoc wraps the session state with the bookkeeping fields the cleanup
// task filters on.
type sessionDoc struct {
	UserID      string              `bson:"userId"`
	State       models.SessionState `bson:"state"`
	LastUpdated time.Time           `bson:"lastUpdated"`
}

// Get loads one user's session state; nil when none exists.
func (r *mongoSessionRepo) Get(ctx context.Context, userID string) (*models.SessionState, error) {
	var doc sessionDoc
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc.State, nil
}

// Upsert writes the session state, last-write-wins.
func (r *mongoSessionRepo) Upsert(ctx context.Context, state *models.SessionState) error {
	doc := sessionDoc{
		UserID:      state.UserID,
		State:       *state,
		LastUpdated: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"userId": state.UserID}, doc, opts)
	return err
}

// Delete removes one user's session state.
func (r *mongoSessionRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}

// DeleteOlderThan drops sessions idle since before the cutoff and returns how
// many were removed.
func (r *mongoSessionRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"lastUpdated": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
