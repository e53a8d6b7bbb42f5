package atlasclient

import (
	"fmt"
	"strings"

	"github.com/atlas-cms/atlas-go/internal/client"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// New creates a new Atlas API client. The configuration is copied; the base
// URL is normalized on the copy.
func New(config *atlas.Config) (atlas.Client, error) {
	if config == nil {
		return nil, atlas.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeEndpoint(config.BaseURL)

	// Use the internal client implementation
	atlasClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return atlasClient, nil
}

// normalizeEndpoint trims trailing slashes and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return ""
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithEndpoint creates an unauthenticated client. Requests can still be
// authenticated one at a time with UseToken or atlas.WithToken.
func NewWithEndpoint(endpoint string) (atlas.Client, error) {
	return New(&atlas.Config{
		BaseURL: endpoint,
	})
}

// NewWithAPIKey creates a client authenticating every request with apiKey.
func NewWithAPIKey(endpoint, apiKey string) (atlas.Client, error) {
	return New(&atlas.Config{
		BaseURL: endpoint,
		APIKey:  apiKey,
	})
}

// NewFromFile creates a client from a configuration file overlaid with
// ATLAS_* environment variables. An empty path reads the environment only.
func NewFromFile(path string) (atlas.Client, error) {
	config, err := atlas.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return New(config)
}
