package client

import (
	"fmt"

	"github.com/atlas-cms/atlas-go/internal/codec"
	"github.com/atlas-cms/atlas-go/internal/constants"
	"github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// Client implements the atlas.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	contents     *ContentsClient
	assets       *AssetsClient
	folders      *FoldersClient
	users        *UsersClient
	roles        *RolesClient
	accounts     *AccountsClient
	accountRoles *AccountRolesClient
	apiKeys      *APIKeysClient
	webhooks     *WebhooksClient
	models       *ModelsClient
	components   *ComponentsClient
	settings     *SettingsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *atlas.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithCodec(codec.New(config.CodecPolicyOrDefault())),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.ProjectKey != "" {
		httpOpts = append(httpOpts, http.WithProjectKey(config.ProjectKey))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a new Atlas API client.
func New(config *atlas.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients creates all resource clients.
func (c *Client) initializeResourceClients() {
	c.contents = NewContentsClient(c.httpClient)
	c.assets = NewAssetsClient(c.httpClient)
	c.folders = NewFoldersClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.roles = NewRolesClient(c.httpClient)
	c.accounts = NewAccountsClient(c.httpClient)
	c.accountRoles = NewAccountRolesClient(c.httpClient)
	c.apiKeys = NewAPIKeysClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.models = NewModelsClient(c.httpClient)
	c.components = NewComponentsClient(c.httpClient)
	c.settings = NewSettingsClient(c.httpClient)
}

// UseToken implements atlas.Client.UseToken.
func (c *Client) UseToken(token string) atlas.Client {
	c.httpClient.UseToken(token)

	return c
}

// Contents implements atlas.Client.Contents.
func (c *Client) Contents() atlas.ContentsClient {
	return c.contents
}

// Assets implements atlas.Client.Assets.
func (c *Client) Assets() atlas.AssetsClient {
	return c.assets
}

// Folders implements atlas.Client.Folders.
func (c *Client) Folders() atlas.FoldersClient {
	return c.folders
}

// Users implements atlas.Client.Users.
func (c *Client) Users() atlas.UsersClient {
	return c.users
}

// Roles implements atlas.Client.Roles.
func (c *Client) Roles() atlas.RolesClient {
	return c.roles
}

// Accounts implements atlas.Client.Accounts.
func (c *Client) Accounts() atlas.AccountsClient {
	return c.accounts
}

// AccountRoles implements atlas.Client.AccountRoles.
func (c *Client) AccountRoles() atlas.AccountRolesClient {
	return c.accountRoles
}

// APIKeys implements atlas.Client.APIKeys.
func (c *Client) APIKeys() atlas.APIKeysClient {
	return c.apiKeys
}

// Webhooks implements atlas.Client.Webhooks.
func (c *Client) Webhooks() atlas.WebhooksClient {
	return c.webhooks
}

// Models implements atlas.Client.Models.
func (c *Client) Models() atlas.ModelsClient {
	return c.models
}

// Components implements atlas.Client.Components.
func (c *Client) Components() atlas.ComponentsClient {
	return c.components
}

// Settings implements atlas.Client.Settings.
func (c *Client) Settings() atlas.SettingsClient {
	return c.settings
}

var _ atlas.Client = (*Client)(nil)
