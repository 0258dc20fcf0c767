package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mediaUC "github.com/khoahotran/portfolio-api/internal/application/usecase/media"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type MediaHandler struct {
	uploadAssetUseCase *mediaUC.UploadAssetUseCase
	logger             logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadAssetUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		uploadAssetUseCase: uploadUC,
		logger:             log,
	}
}

func (h *MediaHandler) UploadAsset(c *gin.Context) {
	var req UploadAssetRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.NewInvalidInput("multipart form with 'file' and 'folder' is required", err))
		return
	}

	file, err := req.File.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read uploaded file", err))
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("Failed to close uploaded file", zap.Error(err))
		}
	}()

	output, err := h.uploadAssetUseCase.Execute(c.Request.Context(), mediaUC.UploadAssetInput{
		File:     file,
		Folder:   req.Folder,
		Filename: req.File.Filename,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, UploadAssetResponse{URL: output.URL})
}
