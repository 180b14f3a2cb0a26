package config

import (
	"Recipe-API/internal/api/handlers"
	"Recipe-API/internal/api/routes"
	"Recipe-API/internal/middleware"
	"Recipe-API/internal/utils"
	"Recipe-API/internal/utils/mailing"
	"Recipe-API/internal/utils/storage"
	"Recipe-API/pkg/ingredient"
	"Recipe-API/pkg/jwt"
	"Recipe-API/pkg/recipe"
	"Recipe-API/pkg/tag"
	"Recipe-API/pkg/user"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const (
	defaultLogFile     = "./logs/app.log"
	defaultBodyLimitMB = 10
	defaultRateLimit   = 10
)

// NewApp wires repositories, services and handlers onto a fiber app. The
// returned cleanup func closes the access log.
func NewApp(db *gorm.DB, store storage.Storage) (*fiber.App, func(), error) {
	jwtService, err := jwt.NewJWTService()
	if err != nil {
		return nil, nil, err
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit: utils.GetConfigInt("BODY_LIMIT_MB", defaultBodyLimitMB) * 1024 * 1024,
	})
	validator := utils.Validate

	app.Use(recover.New())

	// setting up logging and limiter
	logFile := utils.GetConfigDefault("LOG_FILE", defaultLogFile)
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	if rateLimit := utils.GetConfigInt("RATE_LIMIT_MAX", defaultRateLimit); rateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// utils
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	tagRepository := tag.NewTagRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)

	// Service
	userService := user.NewUserService(userRepository, jwtService, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository, store)
	tagService := tag.NewTagService(tagRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	tagHandler := handlers.NewTagHandler(tagService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		TagHandler:        tagHandler,
		IngredientHandler: ingredientHandler,
		Middleware:        middleware.NewMiddleware(userRepository),
		JWTService:        jwtService,
	}
	if local, ok := store.(*storage.LocalStorage); ok {
		routesConfig.MediaURL = local.BaseURL()
		routesConfig.MediaRoot = local.Root()
	}
	routesConfig.Setup()

	cleanup := func() {
		_ = file.Close()
	}
	return app, cleanup, nil
}
