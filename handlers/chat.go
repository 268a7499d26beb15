package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"konoba/models"
	"konoba/services/agent"
	"konoba/utils"
)

// ChatHandler processes one conversational turn for a guest.
func ChatHandler(svc agent.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.GetLogger().Warn("Invalid chat request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}
		req.UserID = strings.TrimSpace(req.UserID)
		req.Message = strings.TrimSpace(req.Message)
		if req.UserID == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and message are required"})
			return
		}

		resp, err := svc.ProcessMessage(c.Request.Context(), req)
		if err != nil {
			utils.GetLogger().Error("Chat turn failed",
				zap.String("userID", req.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ResetChatHandler discards a guest's conversation state.
func ResetChatHandler(svc agent.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"user_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		if err := svc.Reset(c.Request.Context(), strings.TrimSpace(req.UserID)); err != nil {
			utils.GetLogger().Error("Session reset failed",
				zap.String("userID", req.UserID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
