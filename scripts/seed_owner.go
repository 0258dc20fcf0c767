package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("adding owner profile into the store...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	ownerName := os.Getenv("OWNER_NAME")
	if ownerEmail == "" || ownerPassword == "" {
		log.Fatal("OWNER_EMAIL and OWNER_PASSWORD must be set")
	}
	if ownerName == "" {
		ownerName = "Owner"
	}

	ctx := context.Background()
	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	client, closeStore, err := persistence.NewRecordClient(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect store: %v", err)
	}
	defer closeStore()

	profiles := profileUC.NewProfileUseCase(client, nil, appLogger)

	existing, err := profiles.GetProfileByEmail(ctx, ownerEmail)
	if err != nil {
		log.Fatalf("cannot look up owner: %v", err)
	}

	if existing != nil {
		if _, err := profiles.UpdateProfile(ctx, existing.ID(), map[string]any{"password": ownerPassword}); err != nil {
			log.Fatalf("cannot update owner: %v", err)
		}
		fmt.Printf("updated password of owner '%s' successfully!\n", ownerEmail)
		return
	}

	created, err := profiles.CreateProfile(ctx, map[string]any{
		"name":     ownerName,
		"email":    ownerEmail,
		"password": ownerPassword,
	})
	if err != nil {
		log.Fatalf("cannot add owner: %v", err)
	}
	fmt.Printf("added owner '%s' (id %s) successfully!\n", ownerEmail, created.ID())
}
