package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"konoba/services/knowledgebase"
)

// RestaurantInfoHandler returns the public restaurant profile: hours,
// location, contact details and whether the restaurant is currently open.
func RestaurantInfoHandler(kb *knowledgebase.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, kb.RestaurantInfo(time.Now()))
	}
}

// MenuHandler returns the menu, optionally filtered by a search query
// (?q=fish).
func MenuHandler(kb *knowledgebase.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if q := c.Query("q"); q != "" {
			items := kb.SearchMenu(q)
			c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu": kb.MenuFormatted()})
	}
}

// ReloadKnowledgeBaseHandler re-reads the knowledge base files from disk so
// hours or menu edits take effect without a restart.
func ReloadKnowledgeBaseHandler(kb *knowledgebase.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := kb.Reload(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reload knowledge base", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
