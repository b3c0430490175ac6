package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propdesk/inbox-api/internal/domain/tenant"
	"propdesk/inbox-api/internal/interfaces/httpserver/requests"
	"propdesk/inbox-api/internal/interfaces/httpserver/responses"
	"propdesk/inbox-api/internal/utils/platformerrors"
)

// TenantHandler exposes HTTP entrypoints for tenant records.
type TenantHandler struct {
	service tenant.Service
	log     zerolog.Logger
}

// NewTenantHandler constructs the handler.
func NewTenantHandler(service tenant.Service, log zerolog.Logger) *TenantHandler {
	return &TenantHandler{
		service: service,
		log:     log.With().Str("handler", "tenant").Logger(),
	}
}

// Create handles POST /v1/tenants
// @Summary Create a tenant
// @Tags Tenants
// @Accept json
// @Produce json
// @Param request body requests.CreateTenantRequest true "Tenant"
// @Success 201 {object} tenant.Tenant
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var req requests.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid tenant payload", "tenant-create-bind-001")
		return
	}

	t, err := h.service.Create(c.Request.Context(), &tenant.Tenant{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		PropertyAddress: req.PropertyAddress,
		Unit:            req.Unit,
		MoveInDate:      req.MoveInDate,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create tenant")
		return
	}

	c.JSON(http.StatusCreated, t)
}

// Get handles GET /v1/tenants/:tenant_id
// @Summary Get a tenant
// @Tags Tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} tenant.Tenant
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tenants/{tenant_id} [get]
func (h *TenantHandler) Get(c *gin.Context) {
	t, err := h.service.GetByID(c.Request.Context(), c.Param("tenant_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get tenant")
		return
	}

	c.JSON(http.StatusOK, t)
}

// List handles GET /v1/tenants
// @Summary List tenants
// @Tags Tenants
// @Produce json
// @Success 200 {object} responses.ListResponse[tenant.Tenant]
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, responses.NewListResponse(tenants))
}
