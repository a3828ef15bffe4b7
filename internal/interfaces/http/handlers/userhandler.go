package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"faultdesk/internal/application/user/usecases"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
	"faultdesk/internal/shared/utils"
)

type UserHandler struct {
	createUserUC     usecases.CreateUserExecutor
	listUsersUC      usecases.ListUsersExecutor
	updateUserUC     usecases.UpdateUserExecutor
	deactivateUserUC usecases.DeactivateUserExecutor
	logger           logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateUserUC usecases.UpdateUserExecutor,
	deactivateUserUC usecases.DeactivateUserExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC:     createUserUC,
		listUsersUC:      listUsersUC,
		updateUserUC:     updateUserUC,
		deactivateUserUC: deactivateUserUC,
		logger:           log,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Command  string `json:"command" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
}

type UpdateUserRequest struct {
	Role     *string `json:"role"`
	Command  *string `json:"command"`
	Unit     *string `json:"unit"`
	Password *string `json:"password"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Principal: p,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		Command:   req.Command,
		Unit:      req.Unit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	p, _ := authorization.PrincipalFromContext(c)
	pagination := utils.ParsePagination(c)

	query := usecases.ListUsersQuery{
		Principal: p,
		Role:      c.Query("role"),
		Command:   c.Query("command"),
		Page:      pagination.Page,
		Limit:     pagination.Limit,
	}

	if raw := c.Query("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid isActive filter"))
			return
		}
		query.IsActive = &active
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.Limit)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Principal: p,
		UserID:    userID,
		Role:      req.Role,
		Command:   req.Command,
		Unit:      req.Unit,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeactivateUser handles DELETE /users/:id
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p, _ := authorization.PrincipalFromContext(c)

	if err := h.deactivateUserUC.Execute(c.Request.Context(), usecases.DeactivateUserCommand{
		Principal: p,
		UserID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
