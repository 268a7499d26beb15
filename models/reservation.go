package models

import "time"

// Reservation statuses.
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
	ReservationStatusNoShow    = "no_show"
)

// Reservation is a persisted booking record.
type Reservation struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	UserName        string    `bson:"userName" json:"userName"`
	PhoneNumber     string    `bson:"phoneNumber" json:"phoneNumber"`
	NumberOfGuests  int       `bson:"numberOfGuests" json:"numberOfGuests"`
	DateTime        time.Time `bson:"dateTime" json:"dateTime"`
	TimeSlotHours   float64   `bson:"timeSlotHours" json:"timeSlotHours"`
	Status          string    `bson:"status" json:"status"`
	SpecialRequests string    `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
