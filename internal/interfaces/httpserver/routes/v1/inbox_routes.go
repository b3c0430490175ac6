package v1

import (
	"github.com/gin-gonic/gin"

	"propdesk/inbox-api/internal/interfaces/httpserver/handlers"
)

func registerMessageRoutes(group *gin.RouterGroup, handler *handlers.MessageHandler) {
	messages := group.Group("/messages")
	{
		messages.GET("", handler.List)
		messages.GET("/:message_id", handler.Get)
		messages.POST("/:message_id/seen", handler.MarkSeen)
		messages.DELETE("/:message_id", handler.Delete)
	}
}

func registerConversationRoutes(group *gin.RouterGroup, handler *handlers.ConversationHandler) {
	conversations := group.Group("/conversations")
	{
		conversations.GET("", handler.List)
		conversations.GET("/:counterparty/messages", handler.Thread)
		conversations.POST("/:counterparty/read", handler.MarkRead)
	}
}

func registerWebhookRoutes(group *gin.RouterGroup, handler *handlers.WebhookHandler) {
	group.POST("/whatsapp", handler.IngestWhatsApp)
	group.POST("/email", handler.IngestEmail)
}
