package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "faultdesk/internal/interfaces/http/handlers/ticket"
	"faultdesk/internal/interfaces/http/middleware"
	"faultdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler   *tickethandlers.TicketHandler
	TransferHandler *tickethandlers.TransferHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			authorization.RequireTechnician(),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific paths (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/stats",
			config.TicketHandler.GetStats)
		tickets.GET("/recent",
			config.TicketHandler.GetRecent)
		tickets.GET("/dashboard-summary",
			config.TicketHandler.GetDashboardSummary)
		tickets.GET("/export",
			config.TransferHandler.ExportTickets)
		tickets.POST("/import",
			authorization.RequireTechnician(),
			config.TransferHandler.ImportTickets)
		tickets.POST("/:id/comments",
			authorization.RequireTechnician(),
			config.TicketHandler.AddComment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			authorization.RequireTechnician(),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
