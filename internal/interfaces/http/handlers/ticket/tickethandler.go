package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"faultdesk/internal/application/ticket/usecases"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
	"faultdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	addCommentUC   usecases.AddCommentExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	statsUC        usecases.GetTicketStatsExecutor
	recentUC       usecases.GetRecentTicketsExecutor
	dashboardUC    usecases.GetDashboardSummaryExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	statsUC usecases.GetTicketStatsExecutor,
	recentUC usecases.GetRecentTicketsExecutor,
	dashboardUC usecases.GetDashboardSummaryExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		updateTicketUC: updateTicketUC,
		addCommentUC:   addCommentUC,
		deleteTicketUC: deleteTicketUC,
		statsUC:        statsUC,
		recentUC:       recentUC,
		dashboardUC:    dashboardUC,
		logger:         log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(p))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, _ := authorization.PrincipalFromContext(c)
	includeDeleted, _ := strconv.ParseBool(c.Query("includeDeleted"))

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Principal:      p,
		TicketID:       ticketID,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	p, _ := authorization.PrincipalFromContext(c)

	query, err := parseListTicketsQuery(c, p)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ValidatePagination(query.Page, query.Limit)
	utils.ListSuccessResponse(c, result.Tickets, result.Total, pagination.Page, pagination.Limit)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(p, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Principal: p,
		TicketID:  ticketID,
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Principal: p,
		TicketID:  ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetStats handles GET /tickets/stats
func (h *TicketHandler) GetStats(c *gin.Context) {
	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.statsUC.Execute(c.Request.Context(), usecases.GetTicketStatsQuery{Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDashboardSummary handles GET /tickets/dashboard-summary
func (h *TicketHandler) GetDashboardSummary(c *gin.Context) {
	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.GetDashboardSummaryQuery{Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRecent handles GET /tickets/recent
func (h *TicketHandler) GetRecent(c *gin.Context) {
	p, _ := authorization.PrincipalFromContext(c)
	limit := utils.ParseQueryInt(c, "limit", 0)

	result, err := h.recentUC.Execute(c.Request.Context(), usecases.GetRecentTicketsQuery{
		Principal: p,
		Limit:     limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
