package api

import (
	"github.com/gin-gonic/gin"

	"aquaflow/pkg/config"
	"aquaflow/pkg/middleware"
	"aquaflow/pkg/site"
)

// NewRouter wires the middleware stack, page template and routes
func NewRouter(cfg *config.Config, handlers *Handlers) (*gin.Engine, error) {
	tmpl, err := site.Template()
	if err != nil {
		return nil, err
	}

	// Create a new Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigin))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", handlers.HandleLandingPage)
	router.POST("/api/callback", handlers.HandleCallback)
	router.GET("/health", handlers.HealthCheck)

	return router, nil
}
