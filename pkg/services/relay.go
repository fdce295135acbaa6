package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"aquaflow/pkg/clients/webhook"
	"aquaflow/pkg/config"
	"aquaflow/pkg/models"
	"aquaflow/pkg/utils"
)

var (
	ErrPhoneRequired        = errors.New("phone number is required")
	ErrWebhookNotConfigured = errors.New("webhook url is not configured")
)

// CallbackRelayService defines the interface for forwarding callback requests
type CallbackRelayService interface {
	RelayCallback(ctx context.Context, req models.CallbackRequest) error
}

type callbackRelayServiceImpl struct {
	webhookClient webhook.Client
	config        *config.Config
}

// NewCallbackRelayService creates a new relay service
func NewCallbackRelayService(webhookClient webhook.Client, config *config.Config) CallbackRelayService {
	return &callbackRelayServiceImpl{
		webhookClient: webhookClient,
		config:        config,
	}
}

// RelayCallback validates the request and makes exactly one webhook call.
// There is no retry: a failed call is returned to the caller as is.
func (s *callbackRelayServiceImpl) RelayCallback(ctx context.Context, req models.CallbackRequest) error {
	if !req.Phone.Truthy() {
		return ErrPhoneRequired
	}

	if !s.config.HasWebhook() {
		log.Printf("MAKE_WEBHOOK_URL is not defined in environment variables")
		return ErrWebhookNotConfigured
	}

	if err := s.webhookClient.SendCallback(ctx, s.config.WebhookURL, req.Phone); err != nil {
		return fmt.Errorf("relaying callback for %s: %w", utils.PhoneRef(req.Phone.String()), err)
	}

	return nil
}
