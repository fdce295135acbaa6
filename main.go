package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"aquaflow/pkg/api"
	"aquaflow/pkg/clients/webhook"
	"aquaflow/pkg/config"
	"aquaflow/pkg/services"
	"aquaflow/pkg/site"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()
	if !cfg.HasWebhook() {
		log.Println("MAKE_WEBHOOK_URL is not set; callback requests will fail until it is configured")
	}

	// Initialize API clients
	webhookClient := webhook.NewClient(cfg.WebhookTimeout)

	// Initialize services
	relayService := services.NewCallbackRelayService(webhookClient, cfg)

	page, err := site.LoadPage()
	if err != nil {
		log.Fatalf("Error loading landing page: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	// Initialize handlers
	handlers := api.NewHandlers(relayService, page)

	router, err := api.NewRouter(cfg, handlers)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	// Start the server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
