package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faultdesk/internal/application/auth/usecases"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
	"faultdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC       usecases.LoginExecutor
	currentUserUC usecases.GetCurrentUserExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	currentUserUC usecases.GetCurrentUserExecutor,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:       loginUC,
		currentUserUC: currentUserUC,
		logger:        log,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := authorization.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.currentUserUC.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{Principal: p})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
