package v1

import (
	"github.com/gin-gonic/gin"

	"propdesk/inbox-api/internal/interfaces/httpserver/handlers"
)

func registerTicketRoutes(group *gin.RouterGroup, handler *handlers.TicketHandler) {
	tickets := group.Group("/tickets")
	{
		tickets.POST("", handler.Create)
		tickets.GET("", handler.List)
		tickets.GET("/board", handler.Board)
		tickets.GET("/:ticket_id", handler.Get)
		tickets.PATCH("/:ticket_id/status", handler.UpdateStatus)
		tickets.DELETE("/:ticket_id", handler.Delete)
	}
}
