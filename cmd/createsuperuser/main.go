// Command createsuperuser creates a staff account with full privileges.
//
// Usage:
//
//	go run ./cmd/createsuperuser -email admin@example.com -password secret
package main

import (
	"Recipe-API/cmd/config"
	migration "Recipe-API/cmd/database/migrate"
	"Recipe-API/entities"
	"Recipe-API/internal/utils"
	"Recipe-API/internal/utils/mailing"
	"Recipe-API/pkg/jwt"
	"Recipe-API/pkg/user"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/log"
)

var (
	email    = flag.String("email", "", "email address of the new superuser")
	password = flag.String("password", "", "password of the new superuser (falls back to SUPERUSER_PASSWORD)")
)

func main() {
	flag.Parse()
	utils.LoadConfig()

	pw := *password
	if pw == "" {
		pw = os.Getenv("SUPERUSER_PASSWORD")
	}
	if *email == "" || pw == "" {
		flag.Usage()
		os.Exit(2)
	}

	u, err := createSuperuser(context.Background(), *email, pw)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}
	log.Infof("Superuser %s created (id %d)", u.Email, u.ID)
}

func createSuperuser(ctx context.Context, email, password string) (*entities.User, error) {
	jwtService, err := jwt.NewJWTService()
	if err != nil {
		return nil, err
	}

	db, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := migration.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	userService := user.NewUserService(user.NewUserRepository(db), jwtService, mailing.NopMailer{})
	return userService.CreateSuperuser(ctx, email, password)
}
