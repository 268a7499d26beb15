package models

// ChatRequest is the payload coming into /api/chat.
type ChatRequest struct {
	UserID   string `json:"user_id"`
	Message  string `json:"message"`
	UserName string `json:"user_name,omitempty"` // known display name, e.g. from WhatsApp contact
}

// ChatResponse is what the chat handler returns.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Step     Step   `json:"step"`
}

// Confirmation values the extractor may return at the confirm step.
const (
	ConfirmationYes = "yes"
	ConfirmationNo  = "no"
)

// ExtractedFields is the structured output of one extractor call for a single
// user utterance. All fields are best-effort; irrelevant chit-chat yields an
// empty struct with WantsReservation=false.
type ExtractedFields struct {
	Date             string `json:"date,omitempty"`
	Time             string `json:"time,omitempty"`
	Guests           int    `json:"guests,omitempty"`
	Name             string `json:"name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	SpecialRequests  string `json:"special_requests,omitempty"`
	WantsReservation bool   `json:"wants_reservation,omitempty"`
	Confirmation     string `json:"confirmation,omitempty"` // "yes", "no" or empty
	CorrectionField  string `json:"correction_field,omitempty"`
	CorrectionValue  string `json:"correction_value,omitempty"`
}

// HasBookingSignal reports whether the utterance carried anything that should
// pull an idle conversation into the booking flow.
func (e ExtractedFields) HasBookingSignal() bool {
	return e.WantsReservation || e.Date != "" || e.Time != "" || e.Guests > 0
}
