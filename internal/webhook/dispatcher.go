package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/setterlabs/crm-backend/internal/config"
)

// Dispatcher POSTs signed event payloads to the configured subscriber
// URL. Delivery runs from the worker; retries are asynq's concern.
type Dispatcher struct {
	url        string
	secret     string
	httpClient *http.Client
}

func NewDispatcher(cfg config.WebhookConfig) *Dispatcher {
	return &Dispatcher{
		url:    cfg.URL,
		secret: cfg.Secret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a subscriber URL is configured.
func (d *Dispatcher) Enabled() bool {
	return d.url != ""
}

func (d *Dispatcher) Deliver(ctx context.Context, event string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", event)
	req.Header.Set("X-Webhook-Signature", sign(payload, d.secret))

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook delivery failed with status %d", resp.StatusCode)
	}
	return nil
}

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
