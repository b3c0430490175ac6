package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// MessageHandler exposes HTTP entrypoints for the raw message log.
type MessageHandler struct {
	service message.Service
	log     zerolog.Logger
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service message.Service, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With().Str("handler", "message").Logger(),
	}
}

// List handles GET /v1/messages
// @Summary List messages
// @Description Returns messages newest first, optionally filtered by channel, counterparty or unseen flag
// @Tags Messages
// @Produce json
// @Param channel query string false "Filter by channel (whatsapp or email)"
// @Param counterparty query string false "Filter by counterparty address"
// @Param unseen query bool false "Only unseen messages"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} responses.ListResponse[responses.MessagePayload]
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	filter := message.NewFilter()

	if raw := c.Query("channel"); raw != "" {
		ch := message.Channel(raw)
		if !ch.Valid() {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "unknown channel", "message-list-channel-001")
			return
		}
		filter = filter.WithChannel(ch)
	}
	if raw := c.Query("counterparty"); raw != "" {
		filter = filter.WithCounterparty(raw)
	}
	if raw := c.Query("unseen"); raw == "true" {
		filter = filter.WithUnseen()
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "limit must be a non-negative integer", "message-list-limit-001")
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "offset must be a non-negative integer", "message-list-offset-001")
			return
		}
		filter.Offset = offset
	}

	msgs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.HandleError(c, err, "failed to list messages")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(msgs))
}

// Get handles GET /v1/messages/:message_id
// @Summary Get a message
// @Tags Messages
// @Produce json
// @Param message_id path string true "Message ID"
// @Success 200 {object} responses.MessagePayload
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/messages/{message_id} [get]
func (h *MessageHandler) Get(c *gin.Context) {
	msg, err := h.service.GetByID(c.Request.Context(), c.Param("message_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get message")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// MarkSeen handles POST /v1/messages/:message_id/seen
// @Summary Mark a single message seen
// @Description Flips the seen flag to true; marking an already-seen message succeeds without effect
// @Tags Messages
// @Produce json
// @Param message_id path string true "Message ID"
// @Success 200 {object} responses.MessagePayload
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/messages/{message_id}/seen [post]
func (h *MessageHandler) MarkSeen(c *gin.Context) {
	id := c.Param("message_id")

	if err := h.service.MarkSeen(c.Request.Context(), id); err != nil {
		responses.HandleError(c, err, "failed to mark message seen")
		return
	}

	msg, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, err, "failed to get message")
		return
	}

	c.JSON(http.StatusOK, msg)
}

// Delete handles DELETE /v1/messages/:message_id
// @Summary Delete a message
// @Tags Messages
// @Produce json
// @Param message_id path string true "Message ID"
// @Success 204 "No Content"
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/messages/{message_id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("message_id")); err != nil {
		responses.HandleError(c, err, "failed to delete message")
		return
	}

	c.Status(http.StatusNoContent)
}
