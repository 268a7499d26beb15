package handlers

import (
	"github.com/gin-gonic/gin"

	reservationRepo "konoba/database/repository/reservation"
	"konoba/services/agent"
	"konoba/services/chatwoot"
	"konoba/services/knowledgebase"
	"konoba/services/speech"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	ChatHandler      gin.HandlerFunc
	ResetChatHandler gin.HandlerFunc

	// Chatwoot / voice endpoints
	ChatwootWebhookHandler gin.HandlerFunc
	TranscribeHandler      gin.HandlerFunc

	// Admin reservation endpoints
	ListReservationsHandler        gin.HandlerFunc
	GetReservationHandler          gin.HandlerFunc
	UpdateReservationStatusHandler gin.HandlerFunc
	DeleteReservationHandler       gin.HandlerFunc

	// Restaurant info endpoints
	RestaurantInfoHandler      gin.HandlerFunc
	MenuHandler                gin.HandlerFunc
	ReloadKnowledgeBaseHandler gin.HandlerFunc

	// Operational endpoints
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler against its dependencies.
func NewHandlerBundle(
	chatSvc agent.ChatService,
	reservations reservationRepo.ReservationRepository,
	kb *knowledgebase.Manager,
	chatwootClient *chatwoot.Client,
	transcriber *speech.Transcriber,
) *HandlerBundle {
	return &HandlerBundle{
		ChatHandler:      ChatHandler(chatSvc),
		ResetChatHandler: ResetChatHandler(chatSvc),

		ChatwootWebhookHandler: ChatwootWebhookHandler(chatSvc, chatwootClient, transcriber),
		TranscribeHandler:      TranscribeHandler(transcriber),

		ListReservationsHandler:        ListReservationsHandler(reservations),
		GetReservationHandler:          GetReservationHandler(reservations),
		UpdateReservationStatusHandler: UpdateReservationStatusHandler(reservations),
		DeleteReservationHandler:       DeleteReservationHandler(reservations),

		RestaurantInfoHandler:      RestaurantInfoHandler(kb),
		MenuHandler:                MenuHandler(kb),
		ReloadKnowledgeBaseHandler: ReloadKnowledgeBaseHandler(kb),

		HealthHandler: HealthHandler(),
	}
}
