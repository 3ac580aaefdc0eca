package router

import (
	"net/http"

	"github.com/TickTockPlumbing/ticktock-backend/config"
	"github.com/TickTockPlumbing/ticktock-backend/handlers"
	"github.com/TickTockPlumbing/ticktock-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config        *config.Config
	QuoteHandler  *handlers.QuoteHandler
	HealthHandler *handlers.HealthHandler
	Logger        *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	// Global middleware. ErrorHandler recovers panics, so gin.Recovery is
	// not stacked on top of it.
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(&deps.Config.Server))

	// The quote endpoint accepts POST only; every other verb gets the 405
	// envelope without the body being read.
	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.MethodNotAllowed)

	// Health and metrics
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/send-quote", deps.QuoteHandler.SendQuote)
	}

	// Serve the marketing site when a static directory is configured.
	if dir := deps.Config.Server.StaticDir; dir != "" {
		fileServer := http.FileServer(gin.Dir(dir, false))
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
				c.Status(http.StatusNotFound)
				return
			}
			fileServer.ServeHTTP(c.Writer, c.Request)
		})
	}

	return r
}
