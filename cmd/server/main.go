package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/careers-web/internal/client"
	"github.com/yourusername/careers-web/internal/config"
	"github.com/yourusername/careers-web/internal/handler"
	"github.com/yourusername/careers-web/internal/middleware"
	"github.com/yourusername/careers-web/web"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("api", cfg.APIBaseURL).
		Msg("Starting careers web")

	// ── Upstream API client ──────────────────────────────
	api := client.New(cfg.APIBaseURL, cfg.APITimeout)

	// ── Handlers ─────────────────────────────────────────
	authHandler := handler.NewAuthHandler(api)
	roleHandler := handler.NewJobRoleHandler(api, cfg)
	appHandler := handler.NewApplicationHandler(api)

	// ── Middleware ───────────────────────────────────────
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS)

	// ── Router ───────────────────────────────────────────
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(requestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.StaticFS())

	// Health check (unauthenticated)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "careers-web",
			"time":    time.Now().UTC(),
		})
	})

	// ── Routes ───────────────────────────────────────────
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{})
	})

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", rateLimiter.Limit(), authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", rateLimiter.Limit(), authHandler.Register)

	r.GET("/job-roles", roleHandler.List)
	r.GET("/job-roles/:id", roleHandler.Detail)
	r.GET("/job-roles/:id/apply", roleHandler.ShowApplyForm)
	r.POST("/job-roles/:id/apply", roleHandler.SubmitApplication)
	r.POST("/job-roles/:id/applications/:applicationId/hire", roleHandler.Hire)
	r.POST("/job-roles/:id/applications/:applicationId/reject", roleHandler.Reject)

	r.GET("/api/applications/cv", appHandler.DownloadCV)

	if cfg.FeatureJobApplications {
		r.GET("/job-applications", appHandler.ListMine)
	}

	// ── Server ───────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Careers web server running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// requestLogger logs every request with zerolog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= 400 {
			event = log.Warn()
		}
		if status >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Str("requestId", middleware.GetRequestID(c)).
			Msg(fmt.Sprintf("%s %s", c.Request.Method, path))
	}
}
