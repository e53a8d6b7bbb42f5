package client

import (
	"context"
	"time"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// APIKeysClient implements atlas.APIKeysClient.
type APIKeysClient struct {
	*AdminResourceClient[atlas.APIKey]
}

// NewAPIKeysClient creates a new API keys client.
func NewAPIKeysClient(httpClient *internalhttp.Client) *APIKeysClient {
	return &APIKeysClient{
		AdminResourceClient: NewAdminResourceClient[atlas.APIKey](httpClient, "/api/admin/apikeys", "api key"),
	}
}

// apiKeyCreateRequest leaves out the identifier and the secret, which the
// server generates.
type apiKeyCreateRequest struct {
	Name        string
	IsActive    bool
	ValidFrom   *time.Time
	ValidTo     *time.Time
	Permissions []string
}

// Create implements atlas.APIKeysClient.Create.
func (c *APIKeysClient) Create(ctx context.Context, apiKey *atlas.APIKey) (string, error) {
	return c.create(ctx, &apiKeyCreateRequest{
		Name:        apiKey.Name,
		IsActive:    apiKey.IsActive,
		ValidFrom:   apiKey.ValidFrom,
		ValidTo:     apiKey.ValidTo,
		Permissions: apiKey.Permissions,
	})
}

// Update implements atlas.APIKeysClient.Update.
func (c *APIKeysClient) Update(ctx context.Context, apiKey *atlas.APIKey) error {
	return c.update(ctx, apiKey.ID, apiKey)
}

var _ atlas.APIKeysClient = (*APIKeysClient)(nil)
