package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faultdesk/internal/application/orgunit/usecases"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
	"faultdesk/internal/shared/utils"
)

type OrgUnitHandler struct {
	listCommandsUC      usecases.ListCommandsExecutor
	createCommandUC     usecases.CreateCommandExecutor
	deactivateCommandUC usecases.DeactivateCommandExecutor
	listUnitsUC         usecases.ListUnitsExecutor
	createUnitUC        usecases.CreateUnitExecutor
	deactivateUnitUC    usecases.DeactivateUnitExecutor
	logger              logger.Interface
}

func NewOrgUnitHandler(
	listCommandsUC usecases.ListCommandsExecutor,
	createCommandUC usecases.CreateCommandExecutor,
	deactivateCommandUC usecases.DeactivateCommandExecutor,
	listUnitsUC usecases.ListUnitsExecutor,
	createUnitUC usecases.CreateUnitExecutor,
	deactivateUnitUC usecases.DeactivateUnitExecutor,
	log logger.Interface,
) *OrgUnitHandler {
	return &OrgUnitHandler{
		listCommandsUC:      listCommandsUC,
		createCommandUC:     createCommandUC,
		deactivateCommandUC: deactivateCommandUC,
		listUnitsUC:         listUnitsUC,
		createUnitUC:        createUnitUC,
		deactivateUnitUC:    deactivateUnitUC,
		logger:              log,
	}
}

type CreateCommandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateUnitRequest struct {
	Name        string `json:"name" binding:"required"`
	CommandID   uint   `json:"commandId" binding:"required"`
	Description string `json:"description"`
}

// ListCommands handles GET /commands
func (h *OrgUnitHandler) ListCommands(c *gin.Context) {
	result, err := h.listCommandsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateCommand handles POST /commands
func (h *OrgUnitHandler) CreateCommand(c *gin.Context) {
	var req CreateCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.createCommandUC.Execute(c.Request.Context(), usecases.CreateCommandCommand{
		Principal:   p,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Command created successfully")
}

// DeactivateCommand handles DELETE /commands/:id
func (h *OrgUnitHandler) DeactivateCommand(c *gin.Context) {
	commandID, err := utils.ParseIDParam(c, "id", "command")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	if err := h.deactivateCommandUC.Execute(c.Request.Context(), usecases.DeactivateCommandCommand{
		Principal: p,
		CommandID: commandID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListUnits handles GET /units
func (h *OrgUnitHandler) ListUnits(c *gin.Context) {
	commandID := uint(utils.ParseQueryInt(c, "commandId", 0))

	result, err := h.listUnitsUC.Execute(c.Request.Context(), usecases.ListUnitsQuery{CommandID: commandID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateUnit handles POST /units
func (h *OrgUnitHandler) CreateUnit(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.createUnitUC.Execute(c.Request.Context(), usecases.CreateUnitCommand{
		Principal:   p,
		Name:        req.Name,
		CommandID:   req.CommandID,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Unit created successfully")
}

// DeactivateUnit handles DELETE /units/:id
func (h *OrgUnitHandler) DeactivateUnit(c *gin.Context) {
	unitID, err := utils.ParseIDParam(c, "id", "unit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	if err := h.deactivateUnitUC.Execute(c.Request.Context(), usecases.DeactivateUnitCommand{
		Principal: p,
		UnitID:    unitID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
