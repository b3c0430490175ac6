package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/raci"
	"propdesk/inbox-api/internal/interfaces/httpserver/requests"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// RaciHandler exposes HTTP entrypoints for the responsibility matrix.
type RaciHandler struct {
	service raci.Service
	log     zerolog.Logger
}

// NewRaciHandler constructs the handler.
func NewRaciHandler(service raci.Service, log zerolog.Logger) *RaciHandler {
	return &RaciHandler{
		service: service,
		log:     log.With().Str("handler", "raci").Logger(),
	}
}

// List handles GET /v1/raci
// @Summary List responsibility matrix entries
// @Tags Raci
// @Produce json
// @Success 200 {object} responses.ListResponse[raci.Entry]
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/raci [get]
func (h *RaciHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list raci entries")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(entries))
}

// Upsert handles PUT /v1/raci
// @Summary Create or update a matrix entry
// @Description Inserts the entry or, when the task and party pair exists, updates its role and notes
// @Tags Raci
// @Accept json
// @Produce json
// @Param request body requests.UpsertRaciEntryRequest true "Matrix entry"
// @Success 200 {object} raci.Entry
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/raci [put]
func (h *RaciHandler) Upsert(c *gin.Context) {
	var req requests.UpsertRaciEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid raci payload", "raci-upsert-bind-001")
		return
	}

	entry, err := h.service.Upsert(c.Request.Context(), &raci.Entry{
		Task:  req.Task,
		Party: req.Party,
		Role:  raci.Role(req.Role),
		Notes: req.Notes,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to upsert raci entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}
