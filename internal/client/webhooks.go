package client

import (
	"context"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// WebhooksClient implements atlas.WebhooksClient.
type WebhooksClient struct {
	*AdminResourceClient[atlas.Webhook]
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *internalhttp.Client) *WebhooksClient {
	return &WebhooksClient{
		AdminResourceClient: NewAdminResourceClient[atlas.Webhook](httpClient, "/api/admin/webhooks", "webhook"),
	}
}

// Create implements atlas.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, webhook *atlas.Webhook) (string, error) {
	return c.create(ctx, webhook)
}

// Update implements atlas.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, webhook *atlas.Webhook) error {
	return c.update(ctx, webhook.ID, webhook)
}

var _ atlas.WebhooksClient = (*WebhooksClient)(nil)
