package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileResponse(output))
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	payload, ok := bindPayload(c, "profile")
	if !ok {
		return
	}

	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), payload)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile.Schema.Encode(created))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	payload, ok := bindPayload(c, "profile update")
	if !ok {
		return
	}

	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile.Schema.Encode(updated))
}

// bindPayload reads a JSON object body. On failure the error is already
// pushed to the context.
func bindPayload(c *gin.Context, what string) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for "+what, err))
		return nil, false
	}
	if payload == nil {
		c.Error(apperror.NewInvalidInput("request body must be a JSON object", nil))
		return nil, false
	}
	return payload, true
}
