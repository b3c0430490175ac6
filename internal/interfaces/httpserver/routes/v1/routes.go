package v1

import (
	"github.com/gin-gonic/gin"

	"propdesk/inbox-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches all v1 routes under the /v1 prefix and the channel
// gateway ingest routes under /webhooks.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	registerMessageRoutes(group, r.handlers.Message)
	registerConversationRoutes(group, r.handlers.Conversation)
	registerTicketRoutes(group, r.handlers.Ticket)
	registerDirectoryRoutes(group, r.handlers)

	webhooks := engine.Group("/webhooks")
	registerWebhookRoutes(webhooks, r.handlers.Webhook)
}
