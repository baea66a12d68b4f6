package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tastio/tastio-backend/config"
	"github.com/tastio/tastio-backend/internal/app/controller"
	"github.com/tastio/tastio-backend/internal/app/repository"
	"github.com/tastio/tastio-backend/internal/app/service"
	"github.com/tastio/tastio-backend/internal/db"
	"github.com/tastio/tastio-backend/internal/middleware"
	"github.com/tastio/tastio-backend/internal/router"
	"github.com/tastio/tastio-backend/internal/storage"
	"github.com/tastio/tastio-backend/pkg/logger"
	"github.com/tastio/tastio-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Tastio Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed default categories
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis backs the logout token blacklist; the server runs without it
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, logout blacklist disabled", map[string]interface{}{
				"error": err.Error(),
			})
		}
		defer redis.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())
	menuRepo := repository.NewMenuRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	favouriteRepo := repository.NewFavouriteRepository(db.GetDB())
	postRepo := repository.NewPostRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	statsRepo := repository.NewStatsRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	restaurantService := service.NewRestaurantService(restaurantRepo, db.GetDB())
	menuService := service.NewMenuService(menuRepo, restaurantRepo)
	reviewService := service.NewReviewService(reviewRepo, menuRepo, restaurantRepo)
	favouriteService := service.NewFavouriteService(favouriteRepo, reviewRepo)
	postService := service.NewPostService(postRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	adminService := service.NewAdminService(statsRepo, categoryRepo, userRepo)

	// S3 storage for presigned image uploads
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	restaurantController := controller.NewRestaurantController(restaurantService)
	menuController := controller.NewMenuController(menuService)
	reviewController := controller.NewReviewController(reviewService)
	favouriteController := controller.NewFavouriteController(favouriteService)
	postController := controller.NewPostController(postService)
	categoryController := controller.NewCategoryController(categoryService)
	adminController := controller.NewAdminController(adminService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		restaurantController,
		menuController,
		reviewController,
		favouriteController,
		postController,
		categoryController,
		adminController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
