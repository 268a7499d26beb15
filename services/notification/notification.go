package notification

import (
	"context"

	"konoba/services/tasks"
	"konoba/utils"

	"go.uber.org/zap"
)

// LogNotifier is the default reminder transport: it records the reminder in
// the application log. Deployments with an outbound messaging channel swap
// in a real transport.
type LogNotifier struct{}

func (n *LogNotifier) SendReservationReminder(ctx context.Context, payload tasks.ReminderPayload) error {
	utils.GetLogger().Info("reservation reminder due",
		zap.String("reservationId", payload.ReservationID),
		zap.String("guest", payload.UserName),
		zap.String("phone", payload.PhoneNumber),
		zap.Int("guests", payload.Guests),
		zap.Time("dateTime", payload.DateTime),
	)
	return nil
}
