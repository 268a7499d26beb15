package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"konoba/services/speech"
	"konoba/utils"
)

const (
	maxUploadSize    = 10 << 20 // 10MB
	allowedExtension = ".wav"
)

// TranscribeHandler accepts a WAV upload and returns its transcription.
// Used by clients that capture voice locally instead of going through the
// WhatsApp inbox.
func TranscribeHandler(transcriber *speech.Transcriber) gin.HandlerFunc {
	return func(c *gin.Context) {
		if transcriber == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "speech-to-text is not configured"})
			return
		}

		language := c.DefaultPostForm("language", sttLanguage)

		file, header, err := c.Request.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required", "details": err.Error()})
			return
		}
		defer file.Close()

		if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != allowedExtension {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid file type",
				"details": fmt.Sprintf("expected %s, got %s", allowedExtension, ext),
			})
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read audio file"})
			return
		}

		transcript, err := transcriber.TranscribeWAV(c.Request.Context(), data, language)
		if err != nil {
			utils.GetLogger().Error("WAV transcription failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "speech recognition failed", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"transcription": transcript})
	}
}
