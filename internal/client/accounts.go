package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

const (
	accountsPath = "/api/admin/accounts"
	accountPath  = accountsPath + "/{id}"
)

// AccountsClient implements atlas.AccountsClient.
type AccountsClient struct {
	httpClient *internalhttp.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *internalhttp.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
	}
}

// Get implements atlas.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, id string) (*atlas.Account, error) {
	err := requireID(c.httpClient, id)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	var account atlas.Account

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     accountPath,
		Segments: map[string]string{"id": id},
	}, &account)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &account, nil
}

// List implements atlas.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, query *atlas.AccountsQuery) (*atlas.PagedList[atlas.Account], error) {
	var list atlas.PagedList[atlas.Account]

	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   accountsPath,
		Query:  query.ToValues(),
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	return &list, nil
}

// Create implements atlas.AccountsClient.Create.
func (c *AccountsClient) Create(ctx context.Context, account *atlas.RegisterAccount) (string, error) {
	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   accountsPath,
		Body:   account,
	})
	if err != nil {
		return "", fmt.Errorf("creating account: %w", err)
	}

	return id, nil
}

// Update implements atlas.AccountsClient.Update.
func (c *AccountsClient) Update(ctx context.Context, account *atlas.Account) error {
	err := requireID(c.httpClient, account.ID)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPut,
		Path:     accountPath,
		Segments: map[string]string{"id": account.ID},
		Body:     account,
	}, nil)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

// ChangePassword implements atlas.AccountsClient.ChangePassword.
func (c *AccountsClient) ChangePassword(ctx context.Context, id, newPassword string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("changing account password: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPost,
		Path:     accountPath + "/change-password",
		Segments: map[string]string{"id": id},
		Body:     &passwordRequest{Password: newPassword},
	}, nil)
	if err != nil {
		return fmt.Errorf("changing account password: %w", err)
	}

	return nil
}

// Delete implements atlas.AccountsClient.Delete.
func (c *AccountsClient) Delete(ctx context.Context, id string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodDelete,
		Path:     accountPath,
		Segments: map[string]string{"id": id},
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

// Login implements atlas.AccountsClient.Login. Rejected credentials return a
// nil token and no error.
func (c *AccountsClient) Login(ctx context.Context, username, password string) (*atlas.AuthToken, error) {
	return login(ctx, c.httpClient, "/api/admin/login", username, password)
}

var _ atlas.AccountsClient = (*AccountsClient)(nil)
