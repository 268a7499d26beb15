package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"konoba/config"
	"konoba/cron"
	"konoba/database"
	memoryRepoPkg "konoba/database/repository/memory"
	reservationRepoPkg "konoba/database/repository/reservation"
	sessionRepoPkg "konoba/database/repository/session"
	"konoba/handlers"
	"konoba/middleware"
	"konoba/routes"
	"konoba/services/agent"
	"konoba/services/chatwoot"
	ai "konoba/services/intelligence"
	"konoba/services/knowledgebase"
	"konoba/services/memory"
	"konoba/services/notification"
	"konoba/services/session"
	"konoba/services/speech"
	"konoba/services/tasks"
	"konoba/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	kb := knowledgebase.GetManager()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	memoryRepo := memoryRepoPkg.NewMongoMemoryRepo()

	// services.
	memoryService := &memory.DefaultMemoryService{Repo: memoryRepo}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := &session.DefaultSessionStore{
		Cache: session.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL),
		Repo:  sessionRepo,
	}

	geminiClient := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	extractor := ai.NewGeminiExtractor(geminiClient)
	responder := ai.NewGeminiResponder(geminiClient, kb, memoryService)

	reminderLead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	reminderScheduler := tasks.NewAsynqReminderScheduler(reminderLead)
	defer reminderScheduler.Close()

	chatService := &agent.DefaultChatService{
		Extractor:    extractor,
		Responder:    responder,
		Sessions:     sessionStore,
		Policy:       kb,
		Reservations: reservationRepo,
		Memory:       memoryService,
		Reminders:    reminderScheduler,
	}

	var transcriber *speech.Transcriber
	if config.AppConfig.GoogleAPIKey != "" {
		t, err := speech.NewTranscriber(context.Background())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize speech transcriber: %v", err)
		}
		transcriber = t
		defer transcriber.Close()
	} else {
		logger.Sugar().Warn("main: GOOGLE_API_KEY not set, voice transcription disabled")
	}

	chatwootClient := chatwoot.NewClient()
	if !chatwootClient.IsConfigured() {
		logger.Sugar().Warn("main: Chatwoot credentials not set, webhook replies disabled")
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(chatService, reservationRepo, kb, chatwootClient, transcriber)
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers: reservation reminders and stale-session cleanup.
	cron.InitWorker(&notification.LogNotifier{}, sessionRepo)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
