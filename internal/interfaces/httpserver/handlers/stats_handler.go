package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/stats"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
)

// StatsHandler exposes the dashboard overview endpoint.
type StatsHandler struct {
	service stats.Service
	log     zerolog.Logger
}

// NewStatsHandler constructs the handler.
func NewStatsHandler(service stats.Service, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With().Str("handler", "stats").Logger(),
	}
}

// Overview handles GET /v1/stats
// @Summary Get the dashboard overview
// @Description Per-channel message totals plus ticket counts by status and priority
// @Tags Stats
// @Produce json
// @Success 200 {object} stats.Overview
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/stats [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to compute overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}
