package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/property"
	"propdesk/inbox-api/internal/interfaces/httpserver/requests"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// PropertyHandler exposes HTTP entrypoints for property records.
type PropertyHandler struct {
	service property.Service
	log     zerolog.Logger
}

// NewPropertyHandler constructs the handler.
func NewPropertyHandler(service property.Service, log zerolog.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With().Str("handler", "property").Logger(),
	}
}

// Create handles POST /v1/properties
// @Summary Create a property
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body requests.CreatePropertyRequest true "Property"
// @Success 201 {object} property.Property
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req requests.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid property payload", "property-create-bind-001")
		return
	}

	units := req.Units
	if units <= 0 {
		units = 1
	}

	p, err := h.service.Create(c.Request.Context(), &property.Property{
		Address: req.Address,
		City:    req.City,
		Units:   units,
		Notes:   req.Notes,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create property")
		return
	}

	c.JSON(http.StatusCreated, p)
}

// Get handles GET /v1/properties/:property_id
// @Summary Get a property
// @Tags Properties
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} property.Property
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/properties/{property_id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("property_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get property")
		return
	}

	c.JSON(http.StatusOK, p)
}

// List handles GET /v1/properties
// @Summary List properties
// @Tags Properties
// @Produce json
// @Success 200 {object} responses.ListResponse[property.Property]
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list properties")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(properties))
}
