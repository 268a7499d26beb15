package agent

import (
	"context"
	"time"

	"konoba/models"
)

// Extractor converts one user utterance, given the current step, into a
// partial structured field set. Backed by Gemini in production, by a
// deterministic fake in tests.
type Extractor interface {
	Extract(ctx context.Context, message string, step models.Step, referenceTime time.Time) (models.ExtractedFields, error)
}

// Responder answers turns that carry no booking intent. The user identifier
// lets implementations ground the reply in remembered guest facts.
type Responder interface {
	Respond(ctx context.Context, userID, message string, history []models.ChatMessage) (string, error)
}

// SessionStore persists one SessionState per user identifier. Load returns
// nil when no session exists. Reads and writes are last-write-wins: two
// racing turns for the same user can silently lose one turn's effect. Known
// gap, accepted for a conversational UX.
type SessionStore interface {
	Load(ctx context.Context, userID string) (*models.SessionState, error)
	Save(ctx context.Context, state *models.SessionState) error
	Delete(ctx context.Context, userID string) error
}

// PolicyProvider supplies the restaurant's current booking rules.
type PolicyProvider interface {
	GetPolicy() (models.BookingPolicy, error)
	GetReservationSettings() models.ReservationSettings
}

// ReservationSink persists finalized reservations.
type ReservationSink interface {
	Create(ctx context.Context, reservation models.Reservation) (string, error)
}

// MemoryRecorder stores durable guest facts for future recall. Failures are
// logged, never surfaced to the guest.
type MemoryRecorder interface {
	RememberReservation(ctx context.Context, reservation models.Reservation) error
}

// ReminderScheduler enqueues a reservation reminder to fire ahead of the
// booked time. Failures are logged, never surfaced to the guest.
type ReminderScheduler interface {
	ScheduleReservationReminder(ctx context.Context, reservation models.Reservation) error
}

// ChatService is the per-turn entrypoint: load session, extract, advance,
// save. Every turn yields exactly one reply.
type ChatService interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	Reset(ctx context.Context, userID string) error
}
