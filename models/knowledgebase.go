package models

import "time"

// OperatingHours holds open/close times for a single weekday, "HH:MM" 24-hour.
// Close "00:00" means open until midnight.
type OperatingHours struct {
	Open     string `json:"open"`
	Close    string `json:"close"`
	IsClosed bool   `json:"is_closed"`
}

// ReservationSettings is the restaurant's configured booking rules.
type ReservationSettings struct {
	MinGuests             int     `json:"min_guests"`
	MaxGuests             int     `json:"max_guests"`
	DefaultTimeSlotHours  float64 `json:"default_time_slot_hours"`
	AdvanceBookingHours   int     `json:"advance_booking_hours"`
	MaxAdvanceBookingDays int     `json:"max_advance_booking_days"`
	LargePartyThreshold   int     `json:"large_party_threshold"`
	LargePartyNote        string  `json:"large_party_note"`
}

// BookingPolicy is the flattened policy the validator consumes: guest bounds,
// lead time, and per-weekday hours localized to the restaurant's timezone.
type BookingPolicy struct {
	MinGuests           int
	MaxGuests           int
	AdvanceBookingHours int
	HoursByWeekday      map[time.Weekday]OperatingHours
	Location            *time.Location
}

// Address is the restaurant's address block from the knowledge base.
type Address struct {
	Street        string `json:"street"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	FullAddress   string `json:"full_address"`
	GoogleMapsURL string `json:"google_maps_url"`
}

// Contact is the restaurant's contact block.
type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// MenuItem is a single dish on the menu.
type MenuItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags,omitempty"`
}

// MenuCategory groups menu items.
type MenuCategory struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

// RestaurantInfo is the summary handed to the responder as conversation context.
type RestaurantInfo struct {
	Name                  string `json:"name"`
	Tagline               string `json:"tagline"`
	Description           string `json:"description"`
	FullAddress           string `json:"fullAddress"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Website               string `json:"website"`
	OperatingHoursSummary string `json:"operatingHoursSummary"`
	IsCurrentlyOpen       bool   `json:"isCurrentlyOpen"`
	CurrentDayHours       string `json:"currentDayHours"`
	ReservationRules      string `json:"reservationRules"`
}
