package main

import (
	"Recipe-API/cmd/config"
	migration "Recipe-API/cmd/database/migrate"
	"Recipe-API/internal/utils"
	"Recipe-API/internal/utils/storage"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Info("Database migration complete")

	store, err := storage.NewFromConfig(context.Background())
	if err != nil {
		log.Fatalf("Storage setup failed: %v", err)
	}

	app, cleanup, err := config.NewApp(db, store)
	if err != nil {
		log.Fatalf("App setup failed: %v", err)
	}
	defer cleanup()

	go func() {
		port := utils.GetConfigDefault("APP_PORT", "8080")
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
