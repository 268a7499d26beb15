package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftIsComplete(t *testing.T) {
	var d ReservationDraft
	assert.False(t, d.IsComplete())

	d = ReservationDraft{Date: "2026-01-06", Time: "19:00", Guests: 2, Name: "Ana", Phone: "0911"}
	assert.True(t, d.IsComplete())

	// Special requests stay optional.
	d.SpecialRequests = ""
	assert.True(t, d.IsComplete())

	d.Phone = ""
	assert.False(t, d.IsComplete())
}

func TestAppendExchangeTruncatesAfterAppend(t *testing.T) {
	s := NewSessionState("u1")
	for i := 0; i < MaxHistoryEntries; i++ {
		s.AppendExchange(fmt.Sprintf("user %d", i), fmt.Sprintf("bot %d", i))
	}
	require.Len(t, s.History, MaxHistoryEntries)

	s.AppendExchange("newest question", "newest answer")

	// Still bounded, oldest entries evicted, and the freshly appended pair is
	// always present.
	require.Len(t, s.History, MaxHistoryEntries)
	last := s.History[len(s.History)-1]
	assert.Equal(t, "newest answer", last.Content)
	assert.Equal(t, "assistant", last.Role)
	assert.NotEqual(t, "user 0", s.History[0].Content)
	assert.False(t, s.LastActivity.IsZero())
}

func TestSessionStateSerializationRoundTrip(t *testing.T) {
	s := NewSessionState("u1")
	s.Step = StepCollectGuests
	s.Draft = ReservationDraft{Date: "2026-01-06", Time: "19:00"}
	s.AppendExchange("tomorrow at 7pm", "How many guests will be joining?")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored SessionState
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, s.UserID, restored.UserID)
	assert.Equal(t, StepCollectGuests, restored.Step)
	assert.Equal(t, s.Draft, restored.Draft)
	assert.Equal(t, s.History, restored.History)
}

func TestResetDraft(t *testing.T) {
	s := NewSessionState("u1")
	s.Step = StepConfirm
	s.Draft = ReservationDraft{Date: "2026-01-06", Guests: 4}
	s.AppendExchange("hi", "hello")

	s.ResetDraft()

	assert.Equal(t, StepIdle, s.Step)
	assert.Equal(t, ReservationDraft{}, s.Draft)
	// History survives a draft reset.
	assert.Len(t, s.History, 2)
}
