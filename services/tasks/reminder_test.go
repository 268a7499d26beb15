package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservationReminderTask(t *testing.T) {
	payload := ReminderPayload{
		ReservationID: "res-1",
		UserID:        "u1",
		UserName:      "Ana",
		PhoneNumber:   "0911234567",
		Guests:        4,
		DateTime:      time.Date(2026, time.January, 9, 19, 0, 0, 0, time.UTC),
	}
	fireAt := payload.DateTime.Add(-2 * time.Hour)

	task, opts, err := NewReservationReminderTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeReservationReminder, task.Type())
	require.Len(t, opts, 1)

	var decoded ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewSessionCleanupTask(t *testing.T) {
	task := NewSessionCleanupTask()
	assert.Equal(t, TypeSessionCleanup, task.Type())
	assert.Empty(t, task.Payload())
}
