// Package main is the entry point for the habit tracker service.
package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kedrick07/habit-tracker/internal/config"
	"github.com/kedrick07/habit-tracker/internal/database"
	"github.com/kedrick07/habit-tracker/internal/handlers"
	"github.com/kedrick07/habit-tracker/internal/logging"
	"github.com/kedrick07/habit-tracker/internal/repository"
	"github.com/kedrick07/habit-tracker/internal/routes"
	"github.com/kedrick07/habit-tracker/internal/service"
	"github.com/kedrick07/habit-tracker/pkg/redis"
)

func main() {
	// Load configuration; the service refuses to start without valid
	// store settings.
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	logger := logging.New(cfg.Environment)

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	sessionService := service.NewSessionService(redisClient, cfg.JWTRefreshExpiry)
	authService := service.NewAuthService(userRepo, jwtService, sessionService, redisClient, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	habitService := service.NewHabitService(habitRepo)
	completionService := service.NewCompletionService(habitRepo, completionRepo)

	// Initialize handlers
	var cookies *handlers.CookieHelper
	if cfg.EnableCookieAuth {
		cookies = handlers.NewCookieHelper(cfg.Cookie)
	}
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, cookies, logger, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry),
		Habits:     handlers.NewHabitHandler(habitService, logger),
		Completion: handlers.NewCompletionHandler(completionService, logger),
		Dashboard:  handlers.NewDashboardHandler(completionService, logger),
		Session:    handlers.NewSessionHandler(sessionService, logger),
		Health:     handlers.NewHealthHandler(),
	}

	// Setup router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	routes.Setup(router, h, jwtService, cfg, logger)

	logger.Info().Str("port", cfg.Port).Msg("starting habit tracker service")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
