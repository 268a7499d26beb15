package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"konoba/handlers"
)

// RegisterChatRoutes registers the guest-facing conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.ChatHandler)
		api.POST("/reset", hb.ResetChatHandler)
		api.POST("/transcribe", hb.TranscribeHandler)
	}
}

// RegisterWebhookRoutes registers inbound integration endpoints.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webhooks")
	{
		api.POST("/chatwoot", hb.ChatwootWebhookHandler)
	}
}

// RegisterRestaurantRoutes registers public restaurant info endpoints.
func RegisterRestaurantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/restaurant")
	{
		api.GET("/info", hb.RestaurantInfoHandler)
		api.GET("/menu", hb.MenuHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for staff operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/reservations", hb.ListReservationsHandler)
		adminGroup.GET("/reservations/:id", hb.GetReservationHandler)
		adminGroup.PATCH("/reservations/:id/status", hb.UpdateReservationStatusHandler)
		adminGroup.DELETE("/reservations/:id", hb.DeleteReservationHandler)
		adminGroup.POST("/knowledgebase/reload", hb.ReloadKnowledgeBaseHandler)
	}
}

// RegisterHealthRoute registers health-check endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterRestaurantRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
