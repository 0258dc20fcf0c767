package media

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const rootFolder = "portfolio"

// Folders an asset may be filed under.
var AllowedFolders = []string{"images", "resumes", "projects", "certificates"}

type UploadAssetUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAssetUseCase(u service.Uploader, log logger.Logger) *UploadAssetUseCase {
	return &UploadAssetUseCase{uploader: u, logger: log}
}

type UploadAssetInput struct {
	File     io.Reader
	Folder   string
	Filename string
}

type UploadAssetOutput struct {
	URL string
}

func (uc *UploadAssetUseCase) Execute(ctx context.Context, input UploadAssetInput) (*UploadAssetOutput, error) {
	if !slices.Contains(AllowedFolders, input.Folder) {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("folder must be one of %v", AllowedFolders), nil)
	}

	folder := rootFolder + "/" + input.Folder
	publicID := uuid.NewString()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload asset", err,
			zap.String("folder", folder),
			zap.String("filename", input.Filename),
		)
		return nil, apperror.NewUpstream("failed to upload asset", err)
	}

	return &UploadAssetOutput{URL: url}, nil
}
