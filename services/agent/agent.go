package agent

import (
	"context"

	"konoba/models"
	"konoba/utils"

	"go.uber.org/zap"
)

// DefaultChatService wires the state machine to its collaborators. Each
// inbound message is processed synchronously to completion:
// load -> extract -> advance -> save.
type DefaultChatService struct {
	Extractor    Extractor
	Responder    Responder
	Sessions     SessionStore
	Policy       PolicyProvider
	Reservations ReservationSink
	Memory       MemoryRecorder    // optional
	Reminders    ReminderScheduler // optional
}

// ProcessMessage runs one conversation turn. It always returns a non-nil
// response with exactly one reply; a non-nil error alongside it means an
// external collaborator failed and the session was left unchanged.
func (s *DefaultChatService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	state, err := s.Sessions.Load(ctx, req.UserID)
	if err != nil {
		return apologize(models.StepIdle), newExternalFailure("load session", err)
	}
	if state == nil {
		state = models.NewSessionState(req.UserID)
	}

	policy, err := s.Policy.GetPolicy()
	if err != nil {
		return apologize(state.Step), newExternalFailure("load policy", err)
	}
	settings := s.Policy.GetReservationSettings()
	machine := NewMachine(policy, settings.DefaultTimeSlotHours, nil)

	extracted, err := s.Extractor.Extract(ctx, req.Message, state.Step, machine.now())
	if err != nil {
		return apologize(state.Step), newExternalFailure("extract fields", err)
	}

	outcome := machine.Advance(state, req.Message, extracted)

	reply := outcome.Reply
	if outcome.NeedsResponder {
		reply, err = s.Responder.Respond(ctx, req.UserID, req.Message, state.History)
		if err != nil {
			return apologize(state.Step), newExternalFailure("respond", err)
		}
	}

	if outcome.Finalize != nil {
		if _, err := s.Reservations.Create(ctx, *outcome.Finalize); err != nil {
			// Session is not saved, so the step stays at confirmation and
			// the guest's next "yes" re-attempts the booking.
			return apologize(models.StepConfirm), newExternalFailure("create reservation", err)
		}
		s.recordAftermath(ctx, *outcome.Finalize)
	}

	state.AppendExchange(req.Message, reply)
	if err := s.Sessions.Save(ctx, state); err != nil {
		if outcome.Finalize != nil {
			// The reservation exists; losing the session update only costs
			// history, so the confirmation still goes out.
			logger.Error("failed to save session after finalization", zap.Error(err))
		} else {
			return apologize(state.Step), newExternalFailure("save session", err)
		}
	}

	return &models.ChatResponse{Success: true, Response: reply, Step: state.Step}, nil
}

// Reset discards the user's session entirely.
func (s *DefaultChatService) Reset(ctx context.Context, userID string) error {
	return s.Sessions.Delete(ctx, userID)
}

// recordAftermath runs the non-critical post-booking hooks: durable guest
// memory and the reminder task. Failures here are logged only.
func (s *DefaultChatService) recordAftermath(ctx context.Context, reservation models.Reservation) {
	logger := utils.GetLogger()
	if s.Memory != nil {
		if err := s.Memory.RememberReservation(ctx, reservation); err != nil {
			logger.Warn("failed to record reservation memory",
				zap.String("userId", reservation.UserID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReservationReminder(ctx, reservation); err != nil {
			logger.Warn("failed to schedule reservation reminder",
				zap.String("reservationId", reservation.ID), zap.Error(err))
		}
	}
}

func apologize(step models.Step) *models.ChatResponse {
	return &models.ChatResponse{Success: false, Response: apologeticReply(), Step: step}
}
