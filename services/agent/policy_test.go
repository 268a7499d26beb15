package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"konoba/models"
)

func testPolicy() models.BookingPolicy {
	open := models.OperatingHours{Open: "10:00", Close: "22:00"}
	return models.BookingPolicy{
		MinGuests:           1,
		MaxGuests:           20,
		AdvanceBookingHours: 1,
		HoursByWeekday: map[time.Weekday]models.OperatingHours{
			time.Monday:    {IsClosed: true},
			time.Tuesday:   open,
			time.Wednesday: open,
			time.Thursday:  open,
			time.Friday:    {Open: "10:00", Close: "00:00"},
			time.Saturday:  {Open: "10:00", Close: "00:00"},
			time.Sunday:    {Open: "10:00", Close: "17:00"},
		},
		Location: time.UTC,
	}
}

// Monday morning; the week under test runs 2026-01-05 (Mon) to 2026-01-11 (Sun).
var policyNow = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

func TestValidateReservationAccepted(t *testing.T) {
	res := ValidateReservation("2026-01-06", "19:00", 4, testPolicy(), policyNow)
	assert.True(t, res.Accepted)
	assert.Empty(t, res.Reason)
}

func TestValidateReservationGuestBounds(t *testing.T) {
	res := ValidateReservation("2026-01-06", "19:00", 0, testPolicy(), policyNow)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "at least 1")

	res = ValidateReservation("2026-01-06", "19:00", 21, testPolicy(), policyNow)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "at most 20")
}

func TestValidateReservationPast(t *testing.T) {
	res := ValidateReservation("2026-01-04", "19:00", 2, testPolicy(), policyNow)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "in the past")
}

func TestValidateReservationLeadTime(t *testing.T) {
	now := time.Date(2026, time.January, 6, 11, 0, 0, 0, time.UTC)
	res := ValidateReservation("2026-01-06", "11:30", 2, testPolicy(), now)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "at least 1 hour")

	res = ValidateReservation("2026-01-06", "12:30", 2, testPolicy(), now)
	assert.True(t, res.Accepted)
}

func TestValidateReservationClosedDay(t *testing.T) {
	res := ValidateReservation("2026-01-12", "19:00", 2, testPolicy(), policyNow)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "closed on Mondays")
}

func TestValidateReservationOperatingHours(t *testing.T) {
	// Before opening.
	res := ValidateReservation("2026-01-06", "09:30", 2, testPolicy(), policyNow)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "we open at 10:00")

	// At or after closing.
	res = ValidateReservation("2026-01-06", "22:00", 2, testPolicy(), policyNow)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "we close at 22:00")
}

func TestValidateReservationMidnightClose(t *testing.T) {
	// Friday closes at "00:00", meaning open until midnight: a late booking
	// is fine, only the lower bound applies.
	res := ValidateReservation("2026-01-09", "23:30", 2, testPolicy(), policyNow)
	assert.True(t, res.Accepted)

	res = ValidateReservation("2026-01-09", "09:00", 2, testPolicy(), policyNow)
	assert.False(t, res.Accepted)
	assert.Contains(t, res.Reason, "we open at 10:00")
}

func TestGuestCountResult(t *testing.T) {
	assert.True(t, GuestCountResult(5, testPolicy()).Accepted)
	assert.False(t, GuestCountResult(0, testPolicy()).Accepted)
	assert.False(t, GuestCountResult(51, testPolicy()).Accepted)
}
