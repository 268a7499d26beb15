package agent

import (
	"fmt"
	"strings"

	"konoba/models"
)

// Affirmations accepted at the confirmation step, English and Croatian.
var affirmations = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "correct": true,
	"confirmed": true, "confirm": true, "da": true, "ok": true, "okay": true,
}

// Negations that leave the special-requests field empty.
var negations = map[string]bool{
	"no": true, "none": true, "nothing": true, "nope": true, "n/a": true,
}

func isAffirmation(message string) bool {
	return affirmations[strings.ToLower(strings.TrimSpace(strings.Trim(message, ".!?")))]
}

func isNegation(message string) bool {
	return negations[strings.ToLower(strings.TrimSpace(strings.Trim(message, ".!?")))]
}

func askDateTimeReply(draft models.ReservationDraft) string {
	hasDate := isCanonicalDate(draft.Date)
	hasTime := isCanonicalTime(draft.Time)
	switch {
	case hasDate && !hasTime:
		return fmt.Sprintf("Got it, %s. What time would you like to come in?", draft.Date)
	case !hasDate && hasTime:
		return fmt.Sprintf("Noted, %s. Which date should I book?", draft.Time)
	default:
		return "What date and time would you like to book?"
	}
}

func askGuestsReply() string {
	return "How many guests will be joining?"
}

func askNameReply() string {
	return "May I have a name for the reservation?"
}

func askPhoneReply() string {
	return "And a phone number we can reach you at?"
}

func askSpecialReply() string {
	return "Any special requests? (window seat, allergies, a birthday...) Just say \"no\" if not."
}

func confirmYesNoReply() string {
	return "Please reply \"yes\" to confirm the reservation, or tell me what to change."
}

func correctionPromptReply() string {
	return "No problem - which detail should I change?"
}

// summaryReply renders the full recap shown at the confirmation step.
func summaryReply(draft models.ReservationDraft) string {
	var sb strings.Builder
	sb.WriteString("Here is your reservation:\n")
	sb.WriteString(fmt.Sprintf("- Date: %s\n", draft.Date))
	sb.WriteString(fmt.Sprintf("- Time: %s\n", draft.Time))
	sb.WriteString(fmt.Sprintf("- Guests: %d\n", draft.Guests))
	sb.WriteString(fmt.Sprintf("- Name: %s\n", draft.Name))
	sb.WriteString(fmt.Sprintf("- Phone: %s\n", draft.Phone))
	if draft.SpecialRequests != "" {
		sb.WriteString(fmt.Sprintf("- Special requests: %s\n", draft.SpecialRequests))
	}
	sb.WriteString("Shall I confirm it?")
	return sb.String()
}

func confirmedReply(draft models.ReservationDraft) string {
	return fmt.Sprintf(
		"Your table for %d on %s at %s is confirmed. See you then, %s!",
		draft.Guests, draft.Date, draft.Time, draft.Name,
	)
}

func anythingElseReply() string {
	return "Is there anything else I can help you with?"
}

func apologeticReply() string {
	return "I'm sorry, something went wrong on our side. Please try again in a moment."
}
