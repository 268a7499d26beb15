package reservationRepo

import (
	"context"
	"errors"
	"time"

	"konoba/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new reservation and returns its ID.
func (r *mongoReservationRepo) Create(ctx context.Context, reservation models.Reservation) (string, error) {
	if reservation.ID == "" {
		reservation.ID = uuid.New().String()
	}
	now := time.Now()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now
	if reservation.Status == "" {
		reservation.Status = models.ReservationStatusConfirmed
	}

	if _, err := r.coll.InsertOne(ctx, reservation); err != nil {
		return "", err
	}
	return reservation.ID, nil
}

// GetByID returns a reservation by its ID.
func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reservation, nil
}

// GetByUserID fetches all reservations made by one guest, newest first.
func (r *mongoReservationRepo) GetByUserID(ctx context.Context, userID string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.M{"dateTime": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetByDate fetches reservations falling on a calendar day ("YYYY-MM-DD").
func (r *mongoReservationRepo) GetByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	cursor, err := r.coll.Find(ctx, bson.M{
		"dateTime": bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetAll returns every reservation, newest first.
func (r *mongoReservationRepo) GetAll(ctx context.Context) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.M{"dateTime": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// UpdateStatus sets the status ("confirmed", "cancelled", "completed").
func (r *mongoReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("reservation not found")
	}
	return nil
}

// DeleteByID removes a reservation.
func (r *mongoReservationRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("reservation not found")
	}
	return nil
}
