package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/setterlabs/crm-backend/internal/queue"
	"github.com/setterlabs/crm-backend/internal/webhook"
)

// WebhookWorker delivers message.processed events to the configured
// subscriber. Returning an error lets asynq retry the delivery.
type WebhookWorker struct {
	dispatcher *webhook.Dispatcher
}

func NewWebhookWorker(d *webhook.Dispatcher) *WebhookWorker {
	return &WebhookWorker{dispatcher: d}
}

func (w *WebhookWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	if !w.dispatcher.Enabled() {
		return nil
	}

	if err := w.dispatcher.Deliver(ctx, queue.TypeMessageProcessed, t.Payload()); err != nil {
		slog.Error("webhook delivery failed", "error", err)
		return fmt.Errorf("deliver %s: %w", queue.TypeMessageProcessed, err)
	}

	slog.Info("webhook delivered", "event", queue.TypeMessageProcessed)
	return nil
}
