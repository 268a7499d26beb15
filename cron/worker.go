package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"konoba/config"
	sessionRepo "konoba/database/repository/session"
	"konoba/services/tasks"

	"github.com/hibiken/asynq"
)

// ReminderNotifier delivers a reminder to the guest. The transport is
// pluggable; the default wiring logs it, the Chatwoot notifier sends a
// WhatsApp message.
type ReminderNotifier interface {
	SendReservationReminder(ctx context.Context, payload tasks.ReminderPayload) error
}

// InitWorker runs the async worker in background: reservation reminders plus
// the periodic stale-session sweep.
func InitWorker(notifier ReminderNotifier, sessions sessionRepo.SessionStateRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationReminder, handleReminderTask(notifier))
	mux.HandleFunc(tasks.TypeSessionCleanup, handleSessionCleanup(sessions))

	// Start async worker with retry logic
	go func() {
		log.Println("[Worker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	startCleanupScheduler(redisOpts)
}

func handleReminderTask(notifier ReminderNotifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] Reminder for reservation %s (%s, %d guests at %s)",
			p.ReservationID, p.UserName, p.Guests, p.DateTime.Format("2006-01-02 15:04"))

		if err := notifier.SendReservationReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] Failed to deliver reminder: %v", err)
			return err
		}
		return nil
	}
}

func handleSessionCleanup(sessions sessionRepo.SessionStateRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().Add(-time.Duration(config.AppConfig.SessionCleanupHours) * time.Hour)
		deleted, err := sessions.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			log.Printf("[SessionCleanup] Sweep failed: %v", err)
			return err
		}
		if deleted > 0 {
			log.Printf("[SessionCleanup] Removed %d stale session(s)", deleted)
		}
		return nil
	}
}

// startCleanupScheduler enqueues the session sweep hourly.
func startCleanupScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", tasks.NewSessionCleanupTask()); err != nil {
		log.Printf("[Worker] Failed to register cleanup schedule: %v", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[Worker] Cleanup scheduler stopped: %v", err)
		}
	}()
}
