package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeReservationReminder = "reservation:reminder"
	TypeSessionCleanup      = "session:cleanup"
)

// ReminderPayload carries everything the reminder handler needs to notify a
// guest ahead of their reservation.
type ReminderPayload struct {
	ReservationID string    `json:"reservationId"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	PhoneNumber   string    `json:"phoneNumber"`
	Guests        int       `json:"guests"`
	DateTime      time.Time `json:"dateTime"`
}

// NewReservationReminderTask builds a reminder task scheduled at fireAt.
func NewReservationReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewSessionCleanupTask builds the periodic stale-session sweep task.
func NewSessionCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeSessionCleanup, nil)
}
