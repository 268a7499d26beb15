package models

import "time"

// MemoryEntry is one durable fact remembered about a guest.
type MemoryEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Content   string    `bson:"content" json:"content"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"` // e.g. "reservation", "preference"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// GuestProfile summarizes what is known about a returning guest.
type GuestProfile struct {
	UserID            string   `json:"userId"`
	Name              string   `json:"name,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Preferences       []string `json:"preferences,omitempty"`
	PastReservations  int      `json:"pastReservations"`
	LastReservationAt string   `json:"lastReservationAt,omitempty"`
}
