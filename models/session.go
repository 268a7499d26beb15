package models

import "time"

// Step is the current position in the reservation conversation flow.
// Serialized as a stable string tag for storage compatibility.
type Step string

const (
	StepIdle            Step = "idle"
	StepCollectDateTime Step = "collect_datetime"
	StepCollectGuests   Step = "collect_guests"
	StepCollectName     Step = "collect_name"
	StepCollectPhone    Step = "collect_phone"
	StepCollectSpecial  Step = "collect_special"
	StepConfirm         Step = "confirm"
	StepComplete        Step = "complete"
)

// MaxHistoryEntries bounds the per-session message history. Older entries
// are evicted FIFO after each turn.
const MaxHistoryEntries = 40

// ReservationDraft is the mutable record of fields collected so far for one
// booking attempt. Date is canonical YYYY-MM-DD (or raw unparsed text
// transiently), Time is canonical HH:MM.
type ReservationDraft struct {
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	Guests          int    `json:"guests,omitempty"`
	Name            string `json:"name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// IsComplete reports whether every required field has been collected.
// Special requests are optional.
func (d ReservationDraft) IsComplete() bool {
	return d.Date != "" && d.Time != "" && d.Guests > 0 && d.Name != "" && d.Phone != ""
}

// ChatMessage is one entry in the bounded conversation history.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// SessionState is the sole source of truth for where a user is in the
// reservation flow. Exactly one exists per user identifier.
type SessionState struct {
	UserID       string           `json:"userId"`
	Step         Step             `json:"step"`
	Draft        ReservationDraft `json:"draft"`
	History      []ChatMessage    `json:"history"`
	LastActivity time.Time        `json:"lastActivity"`
}

// NewSessionState returns an empty session at the idle step.
func NewSessionState(userID string) *SessionState {
	return &SessionState{
		UserID: userID,
		Step:   StepIdle,
	}
}

// AppendExchange records a user/assistant pair and truncates the history to
// the most recent MaxHistoryEntries. Truncation runs after the append so the
// just-produced exchange is never the one evicted.
func (s *SessionState) AppendExchange(userMsg, assistantMsg string) {
	s.History = append(s.History,
		ChatMessage{Role: "user", Content: userMsg},
		ChatMessage{Role: "assistant", Content: assistantMsg},
	)
	if len(s.History) > MaxHistoryEntries {
		s.History = s.History[len(s.History)-MaxHistoryEntries:]
	}
	s.LastActivity = time.Now()
}

// ResetDraft discards the in-progress reservation and returns to idle.
func (s *SessionState) ResetDraft() {
	s.Draft = ReservationDraft{}
	s.Step = StepIdle
}
