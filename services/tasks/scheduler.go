package tasks

import (
	"context"
	"fmt"
	"time"

	"konoba/config"
	"konoba/models"

	"github.com/hibiken/asynq"
)

// AsynqReminderScheduler enqueues reservation reminders on the shared Redis
// queue. Reservations closer than the lead window get no reminder.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

func NewAsynqReminderScheduler(lead time.Duration) *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqReminderScheduler{client: client, lead: lead}
}

func (s *AsynqReminderScheduler) ScheduleReservationReminder(ctx context.Context, reservation models.Reservation) error {
	fireAt := reservation.DateTime.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := ReminderPayload{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		UserName:      reservation.UserName,
		PhoneNumber:   reservation.PhoneNumber,
		Guests:        reservation.NumberOfGuests,
		DateTime:      reservation.DateTime,
	}
	task, opts, err := NewReservationReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
