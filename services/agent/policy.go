package agent

import (
	"fmt"
	"time"

	"konoba/models"
)

// ValidationResult is the outcome of checking a reservation against
// restaurant policy. Reason is a user-facing sentence fragment; never
// persisted.
type ValidationResult struct {
	Accepted bool
	Reason   string
}

func reject(format string, args ...interface{}) ValidationResult {
	return ValidationResult{Accepted: false, Reason: fmt.Sprintf(format, args...)}
}

// ValidateReservation checks a canonical date ("YYYY-MM-DD"), time ("HH:MM")
// and guest count against the booking policy. Checks short-circuit on the
// first failure. "now" is injected so the validator stays deterministic in
// tests.
func ValidateReservation(date, timeOfDay string, guests int, policy models.BookingPolicy, now time.Time) ValidationResult {
	if guests < policy.MinGuests {
		return reject("we require at least %d guest(s) per reservation", policy.MinGuests)
	}
	if guests > policy.MaxGuests {
		return reject("we can seat at most %d guests per reservation", policy.MaxGuests)
	}

	loc := policy.Location
	if loc == nil {
		loc = time.UTC
	}
	when, err := time.ParseInLocation(CanonicalDateLayout+" 15:04", date+" "+timeOfDay, loc)
	if err != nil {
		return reject("that date and time could not be understood")
	}

	localNow := now.In(loc)
	if !when.After(localNow) {
		return reject("that time is in the past")
	}

	if lead := when.Sub(localNow); lead < time.Duration(policy.AdvanceBookingHours)*time.Hour {
		return reject("reservations must be made at least %d hour(s) in advance", policy.AdvanceBookingHours)
	}

	hours, ok := policy.HoursByWeekday[when.Weekday()]
	if !ok || hours.IsClosed {
		return reject("we are closed on %ss", when.Weekday())
	}

	// Close "00:00" means open until midnight, so only the lower bound
	// applies in that case.
	if timeOfDay < hours.Open {
		return reject("we open at %s on %ss", hours.Open, when.Weekday())
	}
	if hours.Close != "00:00" && timeOfDay >= hours.Close {
		return reject("we close at %s on %ss", hours.Close, when.Weekday())
	}

	return ValidationResult{Accepted: true}
}

// GuestCountResult checks only the guest-count bounds. The state machine uses
// it for the quick check at the guest-collection step before the full
// validation at confirmation.
func GuestCountResult(guests int, policy models.BookingPolicy) ValidationResult {
	if guests < policy.MinGuests {
		return reject("we require at least %d guest(s) per reservation", policy.MinGuests)
	}
	if guests > policy.MaxGuests {
		return reject("we can seat at most %d guests per reservation", policy.MaxGuests)
	}
	return ValidationResult{Accepted: true}
}
