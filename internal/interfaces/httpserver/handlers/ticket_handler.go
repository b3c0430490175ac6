package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/ticket"
	"propdesk/inbox-api/internal/infrastructure/observability"
	"propdesk/inbox-api/internal/interfaces/httpserver/requests"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// TicketHandler exposes HTTP entrypoints for maintenance tickets.
type TicketHandler struct {
	service ticket.Service
	log     zerolog.Logger
}

// NewTicketHandler constructs the handler.
func NewTicketHandler(service ticket.Service, log zerolog.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With().Str("handler", "ticket").Logger(),
	}
}

// Create handles POST /v1/tickets
// @Summary Create a ticket
// @Description Creates a maintenance ticket in the open status
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body requests.CreateTicketRequest true "Ticket"
// @Success 201 {object} responses.TicketPayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req requests.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid ticket payload", "ticket-create-bind-001")
		return
	}

	t, err := h.service.Create(c.Request.Context(), ticket.CreateParams{
		TenantID:        req.TenantID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Priority:        ticket.Priority(req.Priority),
		PropertyAddress: req.PropertyAddress,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create ticket")
		return
	}

	c.JSON(http.StatusCreated, responses.MapTicketToResponse(t))
}

// List handles GET /v1/tickets
// @Summary List tickets
// @Tags Tickets
// @Produce json
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param tenant_id query string false "Filter by tenant"
// @Success 200 {object} responses.ListResponse[responses.TicketPayload]
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	filter := ticket.NewFilter()

	if raw := c.Query("status"); raw != "" {
		st := ticket.Status(raw)
		if !st.Valid() {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "unknown status", "ticket-list-status-001")
			return
		}
		filter = filter.WithStatus(st)
	}
	if raw := c.Query("priority"); raw != "" {
		p := ticket.Priority(raw)
		if !p.Valid() {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "unknown priority", "ticket-list-priority-001")
			return
		}
		filter = filter.WithPriority(p)
	}
	if raw := c.Query("tenant_id"); raw != "" {
		filter = filter.WithTenantID(raw)
	}

	tickets, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.HandleError(c, err, "failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(responses.MapTicketsToResponse(tickets)))
}

// Get handles GET /v1/tickets/:ticket_id
// @Summary Get a ticket
// @Tags Tickets
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Success 200 {object} responses.TicketPayload
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tickets/{ticket_id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), c.Param("ticket_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get ticket")
		return
	}

	c.JSON(http.StatusOK, responses.MapTicketToResponse(t))
}

// UpdateStatus handles PATCH /v1/tickets/:ticket_id/status
// @Summary Update ticket status
// @Description Sets the ticket to any of the five statuses. Quick actions are a curated shortcut set; a direct set is always allowed. Re-setting the current status is a no-op.
// @Tags Tickets
// @Accept json
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Param request body requests.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} responses.TicketStatusResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tickets/{ticket_id}/status [patch]
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("ticket_id")

	var req requests.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "status is required", "ticket-status-bind-001")
		return
	}

	ctx, span := observability.StartTicketSpan(c.Request.Context(), "update_status", id, req.Status)
	defer span.End()

	t, changed, err := h.service.UpdateStatus(ctx, id, ticket.Status(req.Status))
	if err != nil {
		observability.RecordError(span, err, "error")
		responses.HandleError(c, err, "failed to update ticket status")
		return
	}

	c.JSON(http.StatusOK, responses.TicketStatusResponse{
		Ticket:  responses.MapTicketToResponse(t),
		Changed: changed,
	})
}

// Board handles GET /v1/tickets/board
// @Summary Get the kanban board
// @Description Groups all tickets into the five status columns in canonical order, each with its quick actions
// @Tags Tickets
// @Produce json
// @Success 200 {object} responses.ListResponse[ticket.BoardColumn]
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tickets/board [get]
func (h *TicketHandler) Board(c *gin.Context) {
	columns, err := h.service.Board(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to build ticket board")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(columns))
}

// Delete handles DELETE /v1/tickets/:ticket_id
// @Summary Delete a ticket
// @Tags Tickets
// @Produce json
// @Param ticket_id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tickets/{ticket_id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("ticket_id")); err != nil {
		responses.HandleError(c, err, "failed to delete ticket")
		return
	}

	c.Status(http.StatusNoContent)
}
