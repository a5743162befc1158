package main

import (
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/setterlabs/crm-backend/internal/config"
	"github.com/setterlabs/crm-backend/internal/queue"
	"github.com/setterlabs/crm-backend/internal/queue/workers"
	"github.com/setterlabs/crm-backend/internal/webhook"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dispatcher := webhook.NewDispatcher(cfg.Webhook)
	if !dispatcher.Enabled() {
		slog.Warn("WEBHOOK_URL not set, processed-message events will be dropped")
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	webhookWorker := workers.NewWebhookWorker(dispatcher)
	mux.HandleFunc(queue.TypeMessageProcessed, webhookWorker.ProcessTask)

	slog.Info("starting worker", "concurrency", 10)
	if err := srv.Run(mux); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}
