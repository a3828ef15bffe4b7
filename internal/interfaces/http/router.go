// Package http wires repositories, use cases, handlers and middleware into
// the gin engine.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authUsecases "faultdesk/internal/application/auth/usecases"
	importUsecases "faultdesk/internal/application/importer/usecases"
	orgunitUsecases "faultdesk/internal/application/orgunit/usecases"
	ticketUsecases "faultdesk/internal/application/ticket/usecases"
	userUsecases "faultdesk/internal/application/user/usecases"
	"faultdesk/internal/infrastructure/auth"
	"faultdesk/internal/infrastructure/config"
	"faultdesk/internal/infrastructure/repository"
	"faultdesk/internal/infrastructure/sequence"
	"faultdesk/internal/infrastructure/spreadsheet"
	"faultdesk/internal/interfaces/http/handlers"
	tickethandlers "faultdesk/internal/interfaces/http/handlers/ticket"
	"faultdesk/internal/interfaces/http/middleware"
	"faultdesk/internal/interfaces/http/routes"
	"faultdesk/internal/shared/db"
	"faultdesk/internal/shared/logger"
	"faultdesk/internal/shared/utils"
)

// Router holds the configured gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface from configuration and an open
// database handle.
func NewRouter(cfg *config.Config, database *gorm.DB, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Infrastructure
	txManager := db.NewTransactionManager(database)
	ticketRepo := repository.NewTicketRepository(database)
	userRepo := repository.NewUserRepository(database)
	commandRepo := repository.NewCommandRepository(database)
	unitRepo := repository.NewUnitRepository(database)
	allocator := sequence.NewTicketNumberAllocator(database)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	exporter := spreadsheet.NewTicketExporter()
	reader := spreadsheet.NewReader(cfg.Import.MaxRows)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	// Ticket handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, allocator, txManager, log),
		ticketUsecases.NewGetTicketUseCase(ticketRepo, log),
		ticketUsecases.NewListTicketsUseCase(ticketRepo, log),
		ticketUsecases.NewUpdateTicketUseCase(ticketRepo, log),
		ticketUsecases.NewAddCommentUseCase(ticketRepo, log),
		ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log),
		ticketUsecases.NewGetTicketStatsUseCase(ticketRepo, log),
		ticketUsecases.NewGetRecentTicketsUseCase(ticketRepo, log),
		ticketUsecases.NewGetDashboardSummaryUseCase(ticketRepo, log),
		log,
	)
	transferHandler := tickethandlers.NewTransferHandler(
		importUsecases.NewImportTicketsUseCase(ticketRepo, allocator, txManager, reader, log),
		ticketUsecases.NewExportTicketsUseCase(ticketRepo, exporter, log),
		cfg.Import.MaxFileSizeMB,
		log,
	)

	// Auth and user handlers
	authHandler := handlers.NewAuthHandler(
		authUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		authUsecases.NewGetCurrentUserUseCase(userRepo, log),
		log,
	)
	userHandler := handlers.NewUserHandler(
		userUsecases.NewCreateUserUseCase(userRepo, hasher, log),
		userUsecases.NewListUsersUseCase(userRepo, log),
		userUsecases.NewUpdateUserUseCase(userRepo, hasher, log),
		userUsecases.NewDeactivateUserUseCase(userRepo, log),
		log,
	)
	orgUnitHandler := handlers.NewOrgUnitHandler(
		orgunitUsecases.NewListCommandsUseCase(commandRepo, log),
		orgunitUsecases.NewCreateCommandUseCase(commandRepo, log),
		orgunitUsecases.NewDeactivateCommandUseCase(commandRepo, unitRepo, log),
		orgunitUsecases.NewListUnitsUseCase(unitRepo, log),
		orgunitUsecases.NewCreateUnitUseCase(unitRepo, commandRepo, log),
		orgunitUsecases.NewDeactivateUnitUseCase(unitRepo, log),
		log,
	)

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "", gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:   ticketHandler,
		TransferHandler: transferHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupOrgUnitRoutes(api, &routes.OrgUnitRouteConfig{
		OrgUnitHandler: orgUnitHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
