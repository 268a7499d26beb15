package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"konoba/models"

	"github.com/google/uuid"
)

var (
	canonicalDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	canonicalTimeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func isCanonicalDate(s string) bool { return canonicalDateRe.MatchString(s) }
func isCanonicalTime(s string) bool { return canonicalTimeRe.MatchString(s) }

// Outcome is the result of advancing the state machine by one turn.
// Reply is the system utterance for this turn. Finalize, when non-nil, is the
// reservation record the caller must persist. NeedsResponder marks an idle
// turn with no booking intent, which is answered by the general responder.
type Outcome struct {
	Reply          string
	Finalize       *models.Reservation
	NeedsResponder bool
}

// Machine drives the reservation conversation. It is pure: all I/O
// (extraction, persistence) happens in the caller, which makes every
// transition testable with a fake extractor and a fixed clock.
type Machine struct {
	policy    models.BookingPolicy
	slotHours float64
	now       func() time.Time
}

// NewMachine builds a state machine over the given policy. slotHours is the
// default reservation duration recorded on finalized bookings. now is
// injectable for tests; nil means time.Now.
func NewMachine(policy models.BookingPolicy, slotHours float64, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{policy: policy, slotHours: slotHours, now: now}
}

// Advance applies one user turn to the session. It mutates state in place and
// returns the outcome. A parse or validation failure never advances the step
// and clears only the offending field.
func (m *Machine) Advance(state *models.SessionState, message string, extracted models.ExtractedFields) Outcome {
	switch state.Step {
	case models.StepIdle:
		if !extracted.HasBookingSignal() {
			return Outcome{NeedsResponder: true}
		}
		if reply, ok := m.applyFields(&state.Draft, extracted); !ok {
			state.Step = models.StepCollectDateTime
			return Outcome{Reply: reply}
		}
		state.Step = models.StepCollectDateTime
		return m.cascade(state, models.StepCollectDateTime)

	case models.StepCollectDateTime:
		if reply, ok := m.applyFields(&state.Draft, extracted); !ok {
			return Outcome{Reply: reply}
		}
		return m.cascade(state, models.StepCollectDateTime)

	case models.StepCollectGuests:
		if reply, ok := m.applyFields(&state.Draft, extracted); !ok {
			return Outcome{Reply: reply}
		}
		return m.cascade(state, models.StepCollectGuests)

	case models.StepCollectName:
		if reply, ok := m.applyFields(&state.Draft, extracted); !ok {
			return Outcome{Reply: reply}
		}
		return m.cascade(state, models.StepCollectName)

	case models.StepCollectPhone:
		if reply, ok := m.applyFields(&state.Draft, extracted); !ok {
			return Outcome{Reply: reply}
		}
		if state.Draft.Phone == "" {
			return Outcome{Reply: askPhoneReply()}
		}
		state.Step = models.StepCollectSpecial
		return Outcome{Reply: askSpecialReply()}

	case models.StepCollectSpecial:
		return m.advanceSpecial(state, message, extracted)

	case models.StepConfirm:
		return m.advanceConfirm(state, message, extracted)

	case models.StepComplete:
		state.ResetDraft()
		if extracted.HasBookingSignal() {
			return m.Advance(state, message, extracted)
		}
		return Outcome{Reply: anythingElseReply()}
	}

	// Unknown step tag from an old serialized session: start over.
	state.ResetDraft()
	return Outcome{Reply: anythingElseReply()}
}

// applyFields merges every field the extractor produced into the draft.
// A parse failure only affects the offending field: its raw text is kept on
// the draft and re-asked while all other fields still apply. The returned
// reply explains the first failure, ok=false means the turn stops here.
func (m *Machine) applyFields(draft *models.ReservationDraft, x models.ExtractedFields) (string, bool) {
	var failure string
	if x.Date != "" {
		canonical, err := ParseDateString(x.Date, m.now().In(m.location()))
		if err != nil {
			draft.Date = x.Date
			failure = fmt.Sprintf("I couldn't understand %q as a date. Could you rephrase it, for example \"tomorrow\" or \"12.01.2026\"?", x.Date)
		} else {
			draft.Date = canonical
		}
	}
	if x.Time != "" {
		canonical, err := ParseTime(x.Time)
		if err != nil {
			draft.Time = x.Time
			if failure == "" {
				failure = fmt.Sprintf("I couldn't understand %q as a time. Could you rephrase it, for example \"7pm\" or \"19:30\"?", x.Time)
			}
		} else {
			draft.Time = canonical
		}
	}
	if x.Guests > 0 {
		draft.Guests = x.Guests
	}
	if x.Name != "" {
		draft.Name = strings.TrimSpace(x.Name)
	}
	if x.Phone != "" {
		draft.Phone = NormalizePhone(x.Phone)
	}
	if x.SpecialRequests != "" {
		draft.SpecialRequests = strings.TrimSpace(x.SpecialRequests)
	}
	return failure, failure == ""
}

// cascade fast-forwards from the given stage, skipping every step whose field
// is already filled, and stops at the first missing or invalid one. With all
// required fields present it lands on the confirmation summary.
func (m *Machine) cascade(state *models.SessionState, from models.Step) Outcome {
	draft := &state.Draft

	if from == models.StepCollectDateTime {
		if !isCanonicalDate(draft.Date) || !isCanonicalTime(draft.Time) {
			state.Step = models.StepCollectDateTime
			return Outcome{Reply: askDateTimeReply(*draft)}
		}
		// Validate with an in-bounds stand-in guest count: the datetime stage
		// is only about date and time, guest bounds are the next stage's job.
		if res := ValidateReservation(draft.Date, draft.Time, m.policy.MinGuests, m.policy, m.now()); !res.Accepted {
			draft.Date = ""
			draft.Time = ""
			state.Step = models.StepCollectDateTime
			return Outcome{Reply: fmt.Sprintf("Unfortunately %s. What other date and time would work?", res.Reason)}
		}
		from = models.StepCollectGuests
	}

	if from == models.StepCollectGuests {
		if draft.Guests == 0 {
			state.Step = models.StepCollectGuests
			return Outcome{Reply: askGuestsReply()}
		}
		if res := GuestCountResult(draft.Guests, m.policy); !res.Accepted {
			draft.Guests = 0
			state.Step = models.StepCollectGuests
			return Outcome{Reply: fmt.Sprintf("Unfortunately %s. How many guests should I put down?", res.Reason)}
		}
		from = models.StepCollectName
	}

	if from == models.StepCollectName {
		if draft.Name == "" {
			state.Step = models.StepCollectName
			return Outcome{Reply: askNameReply()}
		}
		from = models.StepCollectPhone
	}

	if draft.Phone == "" {
		state.Step = models.StepCollectPhone
		return Outcome{Reply: askPhoneReply()}
	}

	state.Step = models.StepConfirm
	return Outcome{Reply: summaryReply(*draft)}
}

// advanceSpecial handles the optional special-requests step. A negation or
// very short throwaway answer leaves the field empty; anything else is kept.
// Either way the conversation moves to confirmation.
func (m *Machine) advanceSpecial(state *models.SessionState, message string, x models.ExtractedFields) Outcome {
	trimmed := strings.TrimSpace(message)
	switch {
	case x.SpecialRequests != "":
		state.Draft.SpecialRequests = strings.TrimSpace(x.SpecialRequests)
	case isNegation(trimmed) || len(trimmed) < 2:
		// leave empty
	default:
		state.Draft.SpecialRequests = trimmed
	}
	state.Step = models.StepConfirm
	return Outcome{Reply: summaryReply(state.Draft)}
}

func (m *Machine) advanceConfirm(state *models.SessionState, message string, x models.ExtractedFields) Outcome {
	if x.Confirmation == models.ConfirmationYes || isAffirmation(message) {
		return m.finalize(state)
	}

	if x.CorrectionField != "" && x.CorrectionValue != "" {
		return m.applyCorrection(state, x)
	}

	if x.Confirmation == models.ConfirmationNo {
		return Outcome{Reply: correctionPromptReply()}
	}

	return Outcome{Reply: confirmYesNoReply()}
}

// applyCorrection changes exactly one field of the draft and re-emits the
// summary, remaining at the confirmation step.
func (m *Machine) applyCorrection(state *models.SessionState, x models.ExtractedFields) Outcome {
	draft := &state.Draft
	value := strings.TrimSpace(x.CorrectionValue)

	switch strings.ToLower(x.CorrectionField) {
	case "date":
		canonical, err := ParseDateString(value, m.now().In(m.location()))
		if err != nil {
			return Outcome{Reply: fmt.Sprintf("I couldn't understand %q as a date. Which date should it be?", value)}
		}
		draft.Date = canonical
	case "time":
		canonical, err := ParseTime(value)
		if err != nil {
			return Outcome{Reply: fmt.Sprintf("I couldn't understand %q as a time. Which time should it be?", value)}
		}
		draft.Time = canonical
	case "guests":
		guests, err := strconv.Atoi(value)
		if err != nil && x.Guests > 0 {
			guests, err = x.Guests, nil
		}
		if err != nil {
			return Outcome{Reply: "How many guests should I put down?"}
		}
		if res := GuestCountResult(guests, m.policy); !res.Accepted {
			return Outcome{Reply: fmt.Sprintf("Unfortunately %s. How many guests should I put down?", res.Reason)}
		}
		draft.Guests = guests
	case "name":
		draft.Name = value
	case "phone":
		draft.Phone = NormalizePhone(value)
	case "special_requests":
		draft.SpecialRequests = value
	default:
		return Outcome{Reply: correctionPromptReply()}
	}

	return Outcome{Reply: summaryReply(*draft)}
}

// finalize re-validates the full draft one last time: a draft can age past
// the advance-booking window during the conversation. On success it returns
// the reservation record for the caller to persist and marks the session
// complete.
func (m *Machine) finalize(state *models.SessionState) Outcome {
	draft := &state.Draft

	if missing := missingFields(*draft); len(missing) > 0 {
		state.Step = models.StepCollectDateTime
		return Outcome{Reply: fmt.Sprintf("It looks like I'm still missing %s. %s", strings.Join(missing, ", "), askDateTimeReply(*draft))}
	}

	if res := ValidateReservation(draft.Date, draft.Time, draft.Guests, m.policy, m.now()); !res.Accepted {
		draft.Date = ""
		draft.Time = ""
		state.Step = models.StepCollectDateTime
		return Outcome{Reply: fmt.Sprintf("Unfortunately %s. What other date and time would work?", res.Reason)}
	}

	when, _ := time.ParseInLocation(CanonicalDateLayout+" 15:04", draft.Date+" "+draft.Time, m.location())
	reservation := &models.Reservation{
		ID:              uuid.New().String(),
		UserID:          state.UserID,
		UserName:        draft.Name,
		PhoneNumber:     draft.Phone,
		NumberOfGuests:  draft.Guests,
		DateTime:        when,
		TimeSlotHours:   m.slotHours,
		Status:          models.ReservationStatusConfirmed,
		SpecialRequests: draft.SpecialRequests,
		CreatedAt:       m.now(),
	}

	reply := confirmedReply(*draft)
	state.Step = models.StepComplete
	return Outcome{Reply: reply, Finalize: reservation}
}

func (m *Machine) location() *time.Location {
	if m.policy.Location != nil {
		return m.policy.Location
	}
	return time.UTC
}

func missingFields(d models.ReservationDraft) []string {
	var missing []string
	if !isCanonicalDate(d.Date) {
		missing = append(missing, "the date")
	}
	if !isCanonicalTime(d.Time) {
		missing = append(missing, "the time")
	}
	if d.Guests == 0 {
		missing = append(missing, "the guest count")
	}
	if d.Name == "" {
		missing = append(missing, "a name")
	}
	if d.Phone == "" {
		missing = append(missing, "a phone number")
	}
	return missing
}
