package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/api"
	"github.com/forkful/recipe-api/internal/database"
	"github.com/forkful/recipe-api/internal/middleware"
	"github.com/forkful/recipe-api/internal/repository"
	"github.com/forkful/recipe-api/internal/router"
	"github.com/forkful/recipe-api/internal/server"
	"github.com/forkful/recipe-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis is optional; without it write endpoints are simply unthrottled.
	var writeLimiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, rate limiting disabled: %v", err)
	} else {
		writeLimiter = middleware.NewWriteRateLimiter(redisClient)
	}

	// Image storage: S3 when configured, local disk otherwise.
	var store service.ImageStore
	s3cfg, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}
	if s3cfg != nil {
		store = service.NewS3Store(s3cfg)
	} else {
		store = service.NewLocalStore(cfg.UploadDir)
	}

	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	tagService := service.NewTagService(tagRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, tagRepo, ingredientRepo)
	imageService := service.NewImageService(store)

	handlers := router.Handlers{
		User:       api.NewUserHandler(authService),
		Tag:        api.NewTagHandler(tagService),
		Ingredient: api.NewIngredientHandler(ingredientService),
		Recipe:     api.NewRecipeHandler(recipeService, imageService),
	}

	var corsOrigins []string
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsOrigins = strings.Split(origins, ",")
	}

	engine := router.SetupRouter(handlers, authService, writeLimiter, corsOrigins)
	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
