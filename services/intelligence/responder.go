package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"konoba/models"
	"konoba/services/knowledgebase"
	"konoba/services/memory"
)

// GeminiResponder answers turns that carry no booking intent: questions about
// the menu, hours, location, or plain chit-chat. It grounds the model with
// the knowledge base summary and any remembered guest facts.
type GeminiResponder struct {
	client *GeminiClient
	kb     *knowledgebase.Manager
	memory memory.Recaller // optional
}

func NewGeminiResponder(client *GeminiClient, kb *knowledgebase.Manager, recaller memory.Recaller) *GeminiResponder {
	return &GeminiResponder{client: client, kb: kb, memory: recaller}
}

func (r *GeminiResponder) Respond(ctx context.Context, userID, message string, history []models.ChatMessage) (string, error) {
	info := r.kb.RestaurantInfo(time.Now())

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the friendly assistant of %s (%s).\n", info.Name, info.Tagline)
	fmt.Fprintf(&sb, "Address: %s. Phone: %s.\n", info.FullAddress, info.Phone)
	fmt.Fprintf(&sb, "Opening hours:\n%s\n", info.OperatingHoursSummary)
	fmt.Fprintf(&sb, "Reservation rules: %s\n", info.ReservationRules)
	sb.WriteString("Answer briefly and warmly. If the guest seems interested in booking a table, invite them to say so.\n")

	if r.memory != nil && userID != "" {
		if facts, err := r.memory.Recall(ctx, userID, message); err == nil && len(facts) > 0 {
			sb.WriteString("Known about this guest:\n")
			for _, f := range facts {
				sb.WriteString("- " + f + "\n")
			}
		}
	}

	if len(history) > 0 {
		sb.WriteString("Recent conversation:\n")
		start := len(history) - 6
		if start < 0 {
			start = 0
		}
		for _, msg := range history[start:] {
			fmt.Fprintf(&sb, "%s: %s\n", msg.Role, msg.Content)
		}
	}

	fmt.Fprintf(&sb, "Guest: %s\nAssistant:", message)

	reply, err := r.client.GenerateContent(ctx, sb.String())
	if err != nil {
		return "", fmt.Errorf("responder call failed: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
