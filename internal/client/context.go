package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/setterlabs/crm-backend/internal/models"
)

type contextKey string

const clientKey contextKey = "client"

func WithClient(ctx context.Context, c *models.Client) context.Context {
	return context.WithValue(ctx, clientKey, c)
}

func FromContext(ctx context.Context) *models.Client {
	c, _ := ctx.Value(clientKey).(*models.Client)
	return c
}

func IDFromContext(ctx context.Context) uuid.UUID {
	if c := FromContext(ctx); c != nil {
		return c.ID
	}
	return uuid.Nil
}
