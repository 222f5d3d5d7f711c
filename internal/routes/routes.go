// Package routes defines HTTP routes for the habit tracker.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kedrick07/habit-tracker/internal/config"
	"github.com/kedrick07/habit-tracker/internal/handlers"
	"github.com/kedrick07/habit-tracker/internal/metrics"
	"github.com/kedrick07/habit-tracker/internal/middleware"
	"github.com/kedrick07/habit-tracker/internal/service"
)

// Handlers bundles everything Setup wires into the router.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Habits     *handlers.HabitHandler
	Completion *handlers.CompletionHandler
	Dashboard  *handlers.DashboardHandler
	Session    *handlers.SessionHandler
	Health     *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, jwtService service.JWTService, cfg *config.Config, logger zerolog.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Middleware())
	if cfg.EnableCookieAuth {
		router.Use(middleware.CSRF(cfg.AllowedOrigins))
	}

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	authLimiter := middleware.NewRateLimiter(cfg.AuthRatePerSecond, cfg.AuthRateBurst, logger)

	cookieName := ""
	if cfg.EnableCookieAuth {
		cookieName = handlers.AccessTokenCookie
	}
	authRequired := middleware.Auth(jwtService, cookieName)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth", authLimiter.Handler())
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		session := v1.Group("/session", authRequired)
		{
			session.GET("", h.Session.Get)
			session.PUT("/navigation", h.Session.SetNavigation)
		}

		habits := v1.Group("/habits", authRequired)
		{
			habits.GET("", h.Habits.List)
			habits.POST("", h.Habits.Create)
			habits.PUT("/:id", h.Habits.Update)
			habits.DELETE("/:id", h.Habits.Delete)

			habits.PUT("/:id/completions/:date", h.Completion.Record)
			habits.GET("/:id/completions/:date", h.Completion.Status)
			habits.POST("/:id/toggle", h.Completion.Toggle)
			habits.GET("/:id/streak", h.Completion.Streak)
		}

		v1.GET("/dashboard", authRequired, h.Dashboard.Summary)
	}
}
