package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// SettingsClient implements atlas.SettingsClient.
type SettingsClient struct {
	httpClient *internalhttp.Client
}

// NewSettingsClient creates a new settings client.
func NewSettingsClient(httpClient *internalhttp.Client) *SettingsClient {
	return &SettingsClient{
		httpClient: httpClient,
	}
}

// Get implements atlas.SettingsClient.Get.
func (c *SettingsClient) Get(ctx context.Context) (*atlas.Settings, error) {
	var settings atlas.Settings

	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   "/api/admin/settings",
	}, &settings)
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return &settings, nil
}

var _ atlas.SettingsClient = (*SettingsClient)(nil)
