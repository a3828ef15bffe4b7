package routes

import (
	"github.com/gin-gonic/gin"

	"faultdesk/internal/interfaces/http/handlers"
	"faultdesk/internal/interfaces/http/middleware"
	"faultdesk/internal/shared/authorization"
)

type OrgUnitRouteConfig struct {
	OrgUnitHandler *handlers.OrgUnitHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupOrgUnitRoutes(api *gin.RouterGroup, config *OrgUnitRouteConfig) {
	commands := api.Group("/commands")
	commands.Use(config.AuthMiddleware.RequireAuth())
	{
		commands.GET("", config.OrgUnitHandler.ListCommands)
		commands.POST("",
			authorization.RequireAdmin(),
			config.OrgUnitHandler.CreateCommand)
		commands.DELETE("/:id",
			authorization.RequireAdmin(),
			config.OrgUnitHandler.DeactivateCommand)
	}

	units := api.Group("/units")
	units.Use(config.AuthMiddleware.RequireAuth())
	{
		units.GET("", config.OrgUnitHandler.ListUnits)
		units.POST("",
			authorization.RequireAdmin(),
			config.OrgUnitHandler.CreateUnit)
		units.DELETE("/:id",
			authorization.RequireAdmin(),
			config.OrgUnitHandler.DeactivateUnit)
	}
}
