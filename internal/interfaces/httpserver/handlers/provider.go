package handlers

import (
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/conversation"
	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/property"
	"propdesk/inbox-api/internal/domain/raci"
	"propdesk/inbox-api/internal/domain/stats"
	"propdesk/inbox-api/internal/domain/template"
	"propdesk/inbox-api/internal/domain/tenant"
	"propdesk/inbox-api/internal/domain/ticket"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Message      *MessageHandler
	Conversation *ConversationHandler
	Ticket       *TicketHandler
	Tenant       *TenantHandler
	Property     *PropertyHandler
	Template     *TemplateHandler
	Raci         *RaciHandler
	Stats        *StatsHandler
	Webhook      *WebhookHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	messageService message.Service,
	conversationService conversation.Service,
	ticketService ticket.Service,
	tenantService tenant.Service,
	propertyService property.Service,
	templateService template.Service,
	raciService raci.Service,
	statsService stats.Service,
	own OwnAddresses,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Message:      NewMessageHandler(messageService, log),
		Conversation: NewConversationHandler(conversationService, log),
		Ticket:       NewTicketHandler(ticketService, log),
		Tenant:       NewTenantHandler(tenantService, log),
		Property:     NewPropertyHandler(propertyService, log),
		Template:     NewTemplateHandler(templateService, log),
		Raci:         NewRaciHandler(raciService, log),
		Stats:        NewStatsHandler(statsService, log),
		Webhook:      NewWebhookHandler(messageService, own, log),
	}
}
