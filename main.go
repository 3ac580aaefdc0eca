package main

import (
	"github.com/TickTockPlumbing/ticktock-backend/config"
	"github.com/TickTockPlumbing/ticktock-backend/handlers"
	"github.com/TickTockPlumbing/ticktock-backend/logger"
	"github.com/TickTockPlumbing/ticktock-backend/router"
	"github.com/TickTockPlumbing/ticktock-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mailer := services.NewQuoteMailer(&cfg.Email, &cfg.Quote)
	healthService := services.NewHealthService(&cfg.Email, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:        cfg,
		QuoteHandler:  handlers.NewQuoteHandler(mailer),
		HealthHandler: handlers.NewHealthHandler(healthService),
		Logger:        log,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
