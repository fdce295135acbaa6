package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"aquaflow/pkg/models"
)

// Client defines the interface for relaying callback requests to the
// automation webhook (a Make.com scenario in production)
type Client interface {
	SendCallback(ctx context.Context, webhookURL string, phone models.Phone) error
}

type clientImpl struct {
	httpClient *http.Client
}

// NewClient creates a new webhook client. A zero timeout leaves the
// outbound call unbounded apart from the caller's context.
func NewClient(timeout time.Duration) Client {
	return &clientImpl{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendCallback posts {"phone": phone} to webhookURL. The receiver's status
// and body are not inspected: only transport failures are errors.
func (c *clientImpl) SendCallback(ctx context.Context, webhookURL string, phone models.Phone) error {
	jsonPayload, err := json.Marshal(models.WebhookPayload{Phone: phone})
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling webhook: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
