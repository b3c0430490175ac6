package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/infrastructure/metrics"
	"propdesk/inbox-api/internal/interfaces/httpserver/requests"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// OwnAddresses holds the property manager's own channel addresses. Messages
// sent from one of these are mirrors of outgoing traffic, not tenant messages.
type OwnAddresses struct {
	Email    string
	WhatsApp string
}

func (o OwnAddresses) forChannel(channel message.Channel) string {
	if channel == message.ChannelEmail {
		return o.Email
	}
	return o.WhatsApp
}

// WebhookHandler ingests messages delivered by the channel gateways.
type WebhookHandler struct {
	service message.Service
	own     OwnAddresses
	log     zerolog.Logger
}

// NewWebhookHandler constructs the handler.
func NewWebhookHandler(service message.Service, own OwnAddresses, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		own:     own,
		log:     log.With().Str("handler", "webhook").Logger(),
	}
}

// IngestWhatsApp handles POST /webhooks/whatsapp
// @Summary Ingest a whatsapp message
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param request body requests.IngestMessageRequest true "Message"
// @Success 201 {object} responses.MessagePayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /webhooks/whatsapp [post]
func (h *WebhookHandler) IngestWhatsApp(c *gin.Context) {
	h.ingest(c, message.ChannelWhatsApp)
}

// IngestEmail handles POST /webhooks/email
// @Summary Ingest an email message
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param request body requests.IngestMessageRequest true "Message"
// @Success 201 {object} responses.MessagePayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /webhooks/email [post]
func (h *WebhookHandler) IngestEmail(c *gin.Context) {
	h.ingest(c, message.ChannelEmail)
}

func (h *WebhookHandler) ingest(c *gin.Context, channel message.Channel) {
	var req requests.IngestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid message payload", "webhook-ingest-bind-001")
		return
	}

	msg := message.NewInbound(req.ID, channel, req.From, req.To, req.Subject, req.Body, req.Media, req.Timestamp)
	// Gateways also mirror messages the manager sent from the channel app.
	// Some tag them outbound, others leave the direction blank, so a sender
	// matching our own address counts as outbound too.
	own := h.own.forChannel(channel)
	if req.Direction == message.DirectionOutbound.String() ||
		(req.Direction == "" && own != "" && req.From == own) {
		msg.Direction = message.DirectionOutbound
		msg.Seen = true
	}

	stored, err := h.service.Ingest(c.Request.Context(), msg)
	if err != nil {
		responses.HandleError(c, err, "failed to ingest message")
		return
	}

	metrics.RecordMessageIngested(channel.String(), stored.Direction.String())
	c.JSON(http.StatusCreated, stored)
}
