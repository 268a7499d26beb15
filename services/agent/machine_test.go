package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konoba/models"
)

// machineNow is Monday noon; Tuesday 2026-01-06 19:00 is a valid target slot
// under testPolicy.
var machineNow = time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)

func newTestMachine() *Machine {
	return NewMachine(testPolicy(), 2, func() time.Time { return machineNow })
}

func TestAdvanceIdleChitChat(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")

	out := m.Advance(state, "do you have outdoor seating?", models.ExtractedFields{})
	assert.True(t, out.NeedsResponder)
	assert.Nil(t, out.Finalize)
	assert.Equal(t, models.StepIdle, state.Step)
}

func TestAdvanceCascadeSingleTurn(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")

	out := m.Advance(state, "table for 4 tomorrow at 7pm, name is Ana, 091 123 4567", models.ExtractedFields{
		WantsReservation: true,
		Date:             "tomorrow",
		Time:             "7pm",
		Guests:           4,
		Name:             "Ana",
		Phone:            "091 123 4567",
	})

	assert.Equal(t, models.StepConfirm, state.Step)
	assert.Contains(t, out.Reply, "Shall I confirm")
	assert.Equal(t, "2026-01-06", state.Draft.Date)
	assert.Equal(t, "19:00", state.Draft.Time)
	assert.Equal(t, "0911234567", state.Draft.Phone)
}

func TestAdvanceCascadeStopsAtFirstGap(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")

	out := m.Advance(state, "a table tomorrow at 7pm please", models.ExtractedFields{
		WantsReservation: true,
		Date:             "tomorrow",
		Time:             "7pm",
	})

	assert.Equal(t, models.StepCollectGuests, state.Step)
	assert.Contains(t, out.Reply, "How many guests")
}

func TestAdvanceUnparseableDateKeepsRawText(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")

	out := m.Advance(state, "book me in someday", models.ExtractedFields{
		WantsReservation: true,
		Date:             "someday",
	})

	assert.Equal(t, models.StepCollectDateTime, state.Step)
	assert.Contains(t, out.Reply, "couldn't understand")
	assert.Equal(t, "someday", state.Draft.Date)
}

func TestAdvanceUnparseableDateStillAppliesOtherFields(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")

	out := m.Advance(state, "someday at 7pm for 4", models.ExtractedFields{
		WantsReservation: true,
		Date:             "someday",
		Time:             "7pm",
		Guests:           4,
	})

	assert.Equal(t, models.StepCollectDateTime, state.Step)
	assert.Contains(t, out.Reply, "couldn't understand")
	assert.Equal(t, "someday", state.Draft.Date)
	assert.Equal(t, "19:00", state.Draft.Time)
	assert.Equal(t, 4, state.Draft.Guests)
}

func TestAdvanceGuestBoundFailureIsNonDestructive(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.StepCollectGuests
	state.Draft = models.ReservationDraft{Date: "2026-01-06", Time: "19:00"}

	out := m.Advance(state, "51 of us", models.ExtractedFields{Guests: 51})

	// Only the offending field is cleared; date and time survive.
	assert.Equal(t, models.StepCollectGuests, state.Step)
	assert.Contains(t, out.Reply, "at most 20")
	assert.Zero(t, state.Draft.Guests)
	assert.Equal(t, "2026-01-06", state.Draft.Date)
	assert.Equal(t, "19:00", state.Draft.Time)
}

func TestAdvanceDateTimeValidationFailureClearsBoth(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.StepCollectDateTime

	// Monday is closed under testPolicy.
	out := m.Advance(state, "next monday at 7pm", models.ExtractedFields{
		Date: "next monday",
		Time: "7pm",
	})

	assert.Equal(t, models.StepCollectDateTime, state.Step)
	assert.Contains(t, out.Reply, "closed on Mondays")
	assert.Empty(t, state.Draft.Date)
	assert.Empty(t, state.Draft.Time)
}

func TestAdvanceSequentialToCompletion(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")

	m.Advance(state, "I'd like to book a table", models.ExtractedFields{WantsReservation: true})
	assert.Equal(t, models.StepCollectDateTime, state.Step)

	m.Advance(state, "tomorrow at 7pm", models.ExtractedFields{Date: "tomorrow", Time: "7pm"})
	assert.Equal(t, models.StepCollectGuests, state.Step)

	m.Advance(state, "four of us", models.ExtractedFields{Guests: 4})
	assert.Equal(t, models.StepCollectName, state.Step)

	m.Advance(state, "Ana Horvat", models.ExtractedFields{Name: "Ana Horvat"})
	assert.Equal(t, models.StepCollectPhone, state.Step)

	out := m.Advance(state, "091 123 4567", models.ExtractedFields{Phone: "091 123 4567"})
	assert.Equal(t, models.StepCollectSpecial, state.Step)
	assert.Contains(t, out.Reply, "special requests")

	out = m.Advance(state, "a quiet corner please", models.ExtractedFields{})
	assert.Equal(t, models.StepConfirm, state.Step)
	assert.Equal(t, "a quiet corner please", state.Draft.SpecialRequests)
	assert.Contains(t, out.Reply, "Shall I confirm")

	out = m.Advance(state, "yes", models.ExtractedFields{Confirmation: models.ConfirmationYes})
	require.NotNil(t, out.Finalize)
	assert.Equal(t, models.StepComplete, state.Step)
	assert.Contains(t, out.Reply, "confirmed")

	r := out.Finalize
	assert.Equal(t, "u1", r.UserID)
	assert.Equal(t, "Ana Horvat", r.UserName)
	assert.Equal(t, "0911234567", r.PhoneNumber)
	assert.Equal(t, 4, r.NumberOfGuests)
	assert.Equal(t, float64(2), r.TimeSlotHours)
	assert.Equal(t, models.ReservationStatusConfirmed, r.Status)
	assert.Equal(t, time.Date(2026, time.January, 6, 19, 0, 0, 0, time.UTC), r.DateTime)
	assert.NotEmpty(t, r.ID)
}

func TestAdvanceSpecialNegationLeavesEmpty(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.StepCollectSpecial
	state.Draft = models.ReservationDraft{
		Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911",
	}

	out := m.Advance(state, "no", models.ExtractedFields{})
	assert.Equal(t, models.StepConfirm, state.Step)
	assert.Empty(t, state.Draft.SpecialRequests)
	assert.Contains(t, out.Reply, "Shall I confirm")
}

func TestAdvanceConfirmAffirmationVariants(t *testing.T) {
	for _, msg := range []string{"yes", "Yes!", "da", "ok.", "confirmed"} {
		m := newTestMachine()
		state := models.NewSessionState("u1")
		state.Step = models.StepConfirm
		state.Draft = models.ReservationDraft{
			Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911",
		}

		out := m.Advance(state, msg, models.ExtractedFields{})
		assert.NotNil(t, out.Finalize, msg)
		assert.Equal(t, models.StepComplete, state.Step, msg)
	}
}

func TestAdvanceConfirmCorrection(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.StepConfirm
	state.Draft = models.ReservationDraft{
		Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911",
	}

	out := m.Advance(state, "make it 8pm instead", models.ExtractedFields{
		CorrectionField: "time",
		CorrectionValue: "8pm",
	})

	assert.Equal(t, models.StepConfirm, state.Step)
	assert.Equal(t, "20:00", state.Draft.Time)
	assert.Contains(t, out.Reply, "Shall I confirm")
	assert.Nil(t, out.Finalize)
}

func TestAdvanceConfirmRejectionPromptsForChange(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.StepConfirm
	state.Draft = models.ReservationDraft{
		Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911",
	}

	out := m.Advance(state, "no, that's wrong", models.ExtractedFields{Confirmation: models.ConfirmationNo})
	assert.Equal(t, models.StepConfirm, state.Step)
	assert.Contains(t, out.Reply, "which detail")

	// An unclear answer re-asks for an explicit yes or no.
	out = m.Advance(state, "hmm", models.ExtractedFields{})
	assert.Contains(t, out.Reply, `reply "yes"`)
}

func TestFinalizeRevalidates(t *testing.T) {
	// The slot was valid when collected but the conversation dragged past it.
	late := time.Date(2026, time.January, 6, 20, 0, 0, 0, time.UTC)
	m := NewMachine(testPolicy(), 2, func() time.Time { return late })

	state := models.NewSessionState("u1")
	state.Step = models.StepConfirm
	state.Draft = models.ReservationDraft{
		Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911",
	}

	out := m.Advance(state, "yes", models.ExtractedFields{Confirmation: models.ConfirmationYes})
	assert.Nil(t, out.Finalize)
	assert.Equal(t, models.StepCollectDateTime, state.Step)
	assert.Empty(t, state.Draft.Date)
	assert.Empty(t, state.Draft.Time)
	// The rest of the draft survives for the retry.
	assert.Equal(t, 2, state.Draft.Guests)
	assert.Equal(t, "Ana", state.Draft.Name)
}

func TestAdvanceAfterCompleteResetsDraft(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.StepComplete
	state.Draft = models.ReservationDraft{Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911"}

	out := m.Advance(state, "thanks!", models.ExtractedFields{})
	assert.Equal(t, models.StepIdle, state.Step)
	assert.Empty(t, state.Draft.Date)
	assert.Contains(t, out.Reply, "anything else")
}

func TestAdvanceAfterCompleteStartsNewBooking(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.StepComplete
	state.Draft = models.ReservationDraft{Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911"}

	out := m.Advance(state, "actually, another table on friday", models.ExtractedFields{
		WantsReservation: true,
		Date:             "friday",
	})

	assert.Equal(t, models.StepCollectDateTime, state.Step)
	assert.Equal(t, "2026-01-09", state.Draft.Date)
	// The previous booking's fields do not leak into the new draft.
	assert.Empty(t, state.Draft.Name)
	assert.Contains(t, out.Reply, "What time")
}

func TestAdvanceUnknownStepResets(t *testing.T) {
	m := newTestMachine()
	state := models.NewSessionState("u1")
	state.Step = models.Step("legacy_tag")

	out := m.Advance(state, "hello", models.ExtractedFields{})
	assert.Equal(t, models.StepIdle, state.Step)
	assert.Contains(t, out.Reply, "anything else")
}
