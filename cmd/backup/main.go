package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/backup"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	ctx := context.Background()

	client, closeStore, err := persistence.NewRecordClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init record store", err)
	}
	defer closeStore()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	out, err := backup.NewBackupUseCase(client, uploader, appLogger).Execute(ctx)
	if err != nil {
		appLogger.Fatal("Backup failed", err)
	}
	appLogger.Info("Backup stored", zap.String("url", out.URL), zap.Int("rows", out.Rows))
}
