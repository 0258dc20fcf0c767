package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type AuthHandler struct {
	loginUseCase *auth.LoginUseCase
	logger       logger.Logger
}

func NewAuthHandler(loginUC *auth.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
		logger:       log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("email and password are required", err))
		return
	}

	input := auth.LoginInput{
		Email:    req.Email,
		Password: *req.Password,
	}

	if _, err := h.loginUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true})
}
