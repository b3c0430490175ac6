package v1

import (
	"github.com/gin-gonic/gin"

	"propdesk/inbox-api/internal/interfaces/httpserver/handlers"
)

func registerDirectoryRoutes(group *gin.RouterGroup, provider *handlers.Provider) {
	tenants := group.Group("/tenants")
	{
		tenants.POST("", provider.Tenant.Create)
		tenants.GET("", provider.Tenant.List)
		tenants.GET("/:tenant_id", provider.Tenant.Get)
	}

	properties := group.Group("/properties")
	{
		properties.POST("", provider.Property.Create)
		properties.GET("", provider.Property.List)
		properties.GET("/:property_id", provider.Property.Get)
	}

	templates := group.Group("/templates")
	{
		templates.POST("", provider.Template.Create)
		templates.GET("", provider.Template.List)
		templates.POST("/:template_id/render", provider.Template.Render)
		templates.DELETE("/:template_id", provider.Template.Delete)
	}

	group.GET("/raci", provider.Raci.List)
	group.PUT("/raci", provider.Raci.Upsert)

	group.GET("/stats", provider.Stats.Overview)
}
