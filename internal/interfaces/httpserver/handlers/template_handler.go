package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/message"
	"propdesk/inbox-api/internal/domain/template"
	"propdesk/inbox-api/internal/interfaces/httpserver/requests"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// TemplateHandler exposes HTTP entrypoints for reply templates.
type TemplateHandler struct {
	service template.Service
	log     zerolog.Logger
}

// NewTemplateHandler constructs the handler.
func NewTemplateHandler(service template.Service, log zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{
		service: service,
		log:     log.With().Str("handler", "template").Logger(),
	}
}

// Create handles POST /v1/templates
// @Summary Create a reply template
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body requests.CreateTemplateRequest true "Template"
// @Success 201 {object} template.Template
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req requests.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid template payload", "template-create-bind-001")
		return
	}

	t, err := h.service.Create(c.Request.Context(), &template.Template{
		Name:    req.Name,
		Channel: message.Channel(req.Channel),
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create template")
		return
	}

	c.JSON(http.StatusCreated, t)
}

// List handles GET /v1/templates
// @Summary List reply templates
// @Tags Templates
// @Produce json
// @Success 200 {object} responses.ListResponse[template.Template]
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list templates")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(templates))
}

// Render handles POST /v1/templates/:template_id/render
// @Summary Render a template
// @Description Substitutes {{key}} placeholders with the given values; unknown placeholders stay verbatim
// @Tags Templates
// @Accept json
// @Produce json
// @Param template_id path string true "Template ID"
// @Param request body requests.RenderTemplateRequest true "Placeholder values"
// @Success 200 {object} map[string]string
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/templates/{template_id}/render [post]
func (h *TemplateHandler) Render(c *gin.Context) {
	var req requests.RenderTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid render payload", "template-render-bind-001")
		return
	}

	rendered, err := h.service.Render(c.Request.Context(), c.Param("template_id"), req.Values)
	if err != nil {
		responses.HandleError(c, err, "failed to render template")
		return
	}

	c.JSON(http.StatusOK, gin.H{"body": rendered})
}

// Delete handles DELETE /v1/templates/:template_id
// @Summary Delete a template
// @Tags Templates
// @Produce json
// @Param template_id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/templates/{template_id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("template_id")); err != nil {
		responses.HandleError(c, err, "failed to delete template")
		return
	}

	c.Status(http.StatusNoContent)
}
