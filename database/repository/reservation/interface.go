package reservationRepo

import (
	"context"

	"konoba/database"
	"konoba/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReservationRepository persists finalized bookings and backs the admin
// endpoints.
type ReservationRepository interface {
	Create(ctx context.Context, reservation models.Reservation) (string, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Reservation, error)
	GetByDate(ctx context.Context, date string) ([]models.Reservation, error)
	GetAll(ctx context.Context) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a ReservationRepository backed by MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
}
