package chatwoot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"konoba/config"
)

// Package-level HTTP client for Chatwoot API calls.
var chatwootHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Client sends messages back into Chatwoot conversations (WhatsApp inbox).
type Client struct {
	baseURL   string
	token     string
	accountID string
}

// NewClient builds a client from the application configuration.
func NewClient() *Client {
	return &Client{
		baseURL:   strings.TrimRight(config.AppConfig.ChatwootBaseURL, "/"),
		token:     config.AppConfig.ChatwootAPIToken,
		accountID: config.AppConfig.ChatwootAccountID,
	}
}

// IsConfigured reports whether API credentials are present.
func (c *Client) IsConfigured() bool {
	return c.token != "" && c.accountID != ""
}

// SendMessage posts an outgoing text message to a conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID int, text string) error {
	if !c.IsConfigured() {
		return fmt.Errorf("chatwoot API credentials not configured")
	}

	url := fmt.Sprintf("%s/api/v1/accounts/%s/conversations/%d/messages",
		c.baseURL, c.accountID, conversationID)

	payload := map[string]interface{}{
		"content":      text,
		"message_type": "outgoing",
		"private":      false,
		"content_type": "text",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("api_access_token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := chatwootHTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message to Chatwoot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("chatwoot returned status %d", resp.StatusCode)
	}
	return nil
}
