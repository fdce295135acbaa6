package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aquaflow/pkg/models"
)

// Client posts callback requests to the site's /api/callback endpoint
type Client interface {
	SubmitCallback(ctx context.Context, phone string) error
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new callback client for the server at baseURL
func NewClient(baseURL string) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// SubmitCallback returns nil only for a 2xx answer. The server's message is
// not surfaced: every other outcome is the same error to the form.
func (c *clientImpl) SubmitCallback(ctx context.Context, phone string) error {
	jsonPayload, err := json.Marshal(models.CallbackRequest{Phone: models.PhoneString(phone)})
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/callback", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error requesting callback: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request failed: %d", resp.StatusCode)
	}
	return nil
}
