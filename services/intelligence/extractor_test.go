package ai

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konoba/models"
)

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bare", `{"date":"tomorrow"}`, `{"date":"tomorrow"}`},
		{"fenced", "```json\n{\"date\":\"tomorrow\"}\n```", `{"date":"tomorrow"}`},
		{"chatty", `Sure! Here you go: {"guests":4} Hope that helps.`, `{"guests":4}`},
		{"no object", "I cannot help with that", "I cannot help with that"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, extractJSONObject(tc.raw), tc.name)
	}
}

func TestExtractJSONObjectDecodes(t *testing.T) {
	raw := "```json\n" + `{"date":"next friday","time":"7pm","guests":4,"wants_reservation":true}` + "\n```"

	var fields models.ExtractedFields
	require.NoError(t, json.Unmarshal([]byte(extractJSONObject(raw)), &fields))
	assert.Equal(t, "next friday", fields.Date)
	assert.Equal(t, "7pm", fields.Time)
	assert.Equal(t, 4, fields.Guests)
	assert.True(t, fields.WantsReservation)
}

func TestBuildExtractionPrompt(t *testing.T) {
	ref := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	prompt := buildExtractionPrompt("table for two tomorrow", models.StepIdle, ref)

	// The model needs the reference weekday to ground relative dates.
	assert.Contains(t, prompt, "2026-01-05 12:00 (Monday)")
	assert.Contains(t, prompt, "Current conversation step: idle")
	assert.Contains(t, prompt, `"table for two tomorrow"`)
}
