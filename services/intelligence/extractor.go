package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"konoba/models"
)

// GeminiExtractor converts one guest utterance into the structured field set
// the state machine consumes. The model is instructed to reply with strict
// JSON; anything around the JSON object (markdown fences, prose) is stripped
// before decoding.
type GeminiExtractor struct {
	client *GeminiClient
}

func NewGeminiExtractor(client *GeminiClient) *GeminiExtractor {
	return &GeminiExtractor{client: client}
}

func (e *GeminiExtractor) Extract(ctx context.Context, message string, step models.Step, referenceTime time.Time) (models.ExtractedFields, error) {
	prompt := buildExtractionPrompt(message, step, referenceTime)

	raw, err := e.client.GenerateContent(ctx, prompt)
	if err != nil {
		return models.ExtractedFields{}, fmt.Errorf("extraction call failed: %w", err)
	}

	var fields models.ExtractedFields
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &fields); err != nil {
		return models.ExtractedFields{}, fmt.Errorf("failed to decode extraction output: %w", err)
	}
	return fields, nil
}

func buildExtractionPrompt(message string, step models.Step, referenceTime time.Time) string {
	var sb strings.Builder
	sb.WriteString("You extract reservation details from a restaurant guest's message.\n")
	sb.WriteString("Reply with ONLY a JSON object, no markdown, matching this schema:\n")
	sb.WriteString(`{"date":"","time":"","guests":0,"name":"","phone":"","special_requests":"","wants_reservation":false,"confirmation":"","correction_field":"","correction_value":""}` + "\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- date: as written by the guest (e.g. \"tomorrow\", \"next friday\", \"12.01.2026\"); leave empty if absent\n")
	sb.WriteString("- time: as written (e.g. \"7pm\", \"19:30\"); leave empty if absent\n")
	sb.WriteString("- guests: party size as an integer, 0 if absent\n")
	sb.WriteString("- phone: convert spoken digits to numbers, e.g. \"plus four six\" -> \"+46\", \"oh nine one\" -> \"091\"\n")
	sb.WriteString("- wants_reservation: true only if the guest expresses intent to book a table\n")
	sb.WriteString("- confirmation: \"yes\" or \"no\" only when the guest is answering a confirmation question\n")
	sb.WriteString("- correction_field/correction_value: set only when the guest asks to change one already-given detail\n")
	sb.WriteString("- Unknown fields stay empty. Never invent values.\n")
	fmt.Fprintf(&sb, "Current conversation step: %s\n", step)
	fmt.Fprintf(&sb, "Current date and time: %s (%s)\n", referenceTime.Format("2006-01-02 15:04"), referenceTime.Weekday())
	fmt.Fprintf(&sb, "Guest message: %q\n", message)
	return sb.String()
}

// extractJSONObject returns the first top-level {...} block in the text, so
// fenced or chatty model output still decodes.
func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}
