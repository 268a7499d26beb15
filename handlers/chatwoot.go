package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"konoba/models"
	"konoba/services/agent"
	"konoba/services/chatwoot"
	"konoba/services/speech"
	"konoba/utils"
)

const sttLanguage = "en-US"

// ChatwootWebhookHandler receives message events from the Chatwoot WhatsApp
// inbox, runs them through the conversation engine and posts the reply back
// into the same conversation. The webhook always gets a 200 so Chatwoot does
// not retry; failures are logged and, where possible, surfaced to the guest.
func ChatwootWebhookHandler(svc agent.ChatService, client *chatwoot.Client, transcriber *speech.Transcriber) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload models.ChatwootWebhookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.GetLogger().Warn("Invalid Chatwoot webhook body", zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}

		// Only inbound guest messages are interesting. Outgoing echoes,
		// private notes and non-message events are acknowledged and dropped.
		if payload.Event != "message_created" || payload.MessageType != "incoming" || payload.Private {
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}

		logger := utils.GetLogger()
		ctx := c.Request.Context()
		conversationID := payload.Conversation.ID
		userID := fmt.Sprintf("chatwoot:%d", conversationID)

		text := strings.TrimSpace(payload.Content)
		if text == "" {
			audioURL := firstAudioAttachment(payload.Attachments)
			if audioURL == "" {
				c.JSON(http.StatusOK, gin.H{"status": "ignored"})
				return
			}
			if transcriber == nil {
				sendOrLog(c, client, conversationID, "Sorry, I can't listen to voice messages right now. Could you type that instead?")
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
				return
			}
			transcript, err := transcriber.TranscribeURL(ctx, audioURL, sttLanguage)
			if err != nil || transcript == "" {
				logger.Warn("Voice note transcription failed",
					zap.Int("conversationID", conversationID), zap.Error(err))
				sendOrLog(c, client, conversationID, "Sorry, I couldn't make out that voice message. Could you type it instead?")
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
				return
			}
			text = transcript
		}

		resp, err := svc.ProcessMessage(ctx, models.ChatRequest{
			UserID:   userID,
			Message:  text,
			UserName: payload.Sender.Name,
		})
		if err != nil {
			logger.Error("Chatwoot turn failed",
				zap.Int("conversationID", conversationID), zap.Error(err))
			sendOrLog(c, client, conversationID, "Sorry, something went wrong on our side. Please try again in a moment.")
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		sendOrLog(c, client, conversationID, resp.Response)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func firstAudioAttachment(attachments []models.ChatwootAttachment) string {
	for _, a := range attachments {
		if a.FileType == "audio" && a.DataURL != "" {
			return a.DataURL
		}
	}
	return ""
}

func sendOrLog(c *gin.Context, client *chatwoot.Client, conversationID int, text string) {
	if err := client.SendMessage(c.Request.Context(), conversationID, text); err != nil {
		utils.GetLogger().Error("Failed to send Chatwoot reply",
			zap.Int("conversationID", conversationID), zap.Error(err))
	}
}
