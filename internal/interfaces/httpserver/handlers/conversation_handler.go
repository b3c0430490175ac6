package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/conversation"
	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/infrastructure/metrics"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// ConversationHandler exposes HTTP entrypoints for the conversation views.
type ConversationHandler struct {
	service conversation.Service
	log     zerolog.Logger
}

// NewConversationHandler constructs the handler.
func NewConversationHandler(service conversation.Service, log zerolog.Logger) *ConversationHandler {
	return &ConversationHandler{
		service: service,
		log:     log.With().Str("handler", "conversation").Logger(),
	}
}

// List handles GET /v1/conversations
// @Summary List conversations
// @Description Aggregates the recent message window into per-counterparty conversation summaries, newest first
// @Tags Conversations
// @Produce json
// @Param channel query string false "Filter by channel (whatsapp or email)"
// @Param limit query int false "Aggregation window size"
// @Success 200 {object} responses.ListResponse[responses.ConversationPayload]
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/conversations [get]
func (h *ConversationHandler) List(c *gin.Context) {
	var channel *message.Channel
	if raw := c.Query("channel"); raw != "" {
		ch := message.Channel(raw)
		if !ch.Valid() {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "unknown channel", "conversation-list-channel-001")
			return
		}
		channel = &ch
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "limit must be a non-negative integer", "conversation-list-limit-001")
			return
		}
		limit = parsed
	}

	conversations, err := h.service.List(c.Request.Context(), channel, limit)
	if err != nil {
		responses.HandleError(c, err, "failed to list conversations")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(conversations))
}

// Thread handles GET /v1/conversations/:counterparty/messages
// @Summary Get a conversation thread
// @Description Returns all messages exchanged with one counterparty, oldest first
// @Tags Conversations
// @Produce json
// @Param counterparty path string true "Counterparty address"
// @Success 200 {object} responses.ThreadResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/conversations/{counterparty}/messages [get]
func (h *ConversationHandler) Thread(c *gin.Context) {
	counterparty := c.Param("counterparty")

	msgs, err := h.service.Thread(c.Request.Context(), counterparty)
	if err != nil {
		responses.HandleError(c, err, "failed to load conversation thread")
		return
	}
	if msgs == nil {
		msgs = []message.Message{}
	}

	c.JSON(http.StatusOK, responses.ThreadResponse{
		Counterparty: counterparty,
		Messages:     msgs,
		Total:        len(msgs),
	})
}

// MarkRead handles POST /v1/conversations/:counterparty/read
// @Summary Mark a conversation as read
// @Description Marks every unseen message of the counterparty seen. On partial failure the applied updates stay and the response reports both sides.
// @Tags Conversations
// @Produce json
// @Param counterparty path string true "Counterparty address"
// @Success 200 {object} responses.MarkReadResponse
// @Success 207 {object} responses.MarkReadResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/conversations/{counterparty}/read [post]
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	counterparty := c.Param("counterparty")

	marked, err := h.service.MarkRead(c.Request.Context(), counterparty)
	if marked > 0 {
		metrics.RecordMessagesSeen(marked)
	}
	if err != nil {
		var platformErr *platformerrors.PlatformError
		if errors.As(err, &platformErr) && platformErr.Type == platformerrors.ErrorTypePartialFailure {
			// Successful updates are kept; report both sides.
			failed, _ := platformErr.Context["failed_ids"].([]string)
			c.JSON(http.StatusMultiStatus, responses.MarkReadResponse{
				Counterparty: counterparty,
				Marked:       marked,
				FailedIDs:    failed,
			})
			return
		}
		responses.HandleError(c, err, "failed to mark conversation read")
		return
	}

	c.JSON(http.StatusOK, responses.MarkReadResponse{
		Counterparty: counterparty,
		Marked:       marked,
	})
}
