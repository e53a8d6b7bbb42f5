package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

const accountRolesPath = "/api/admin/roles"

// AccountRolesClient implements atlas.AccountRolesClient.
type AccountRolesClient struct {
	httpClient *internalhttp.Client
}

// NewAccountRolesClient creates a new account roles client.
func NewAccountRolesClient(httpClient *internalhttp.Client) *AccountRolesClient {
	return &AccountRolesClient{
		httpClient: httpClient,
	}
}

// accountRoleCreateRequest carries only the fields a new role accepts.
type accountRoleCreateRequest struct {
	Name        string
	Permissions []string
}

// List implements atlas.AccountRolesClient.List.
func (c *AccountRolesClient) List(ctx context.Context) ([]atlas.AccountRole, error) {
	var roles []atlas.AccountRole

	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   accountRolesPath,
	}, &roles)
	if err != nil {
		return nil, fmt.Errorf("listing account roles: %w", err)
	}

	return roles, nil
}

// Create implements atlas.AccountRolesClient.Create.
func (c *AccountRolesClient) Create(ctx context.Context, role *atlas.AccountRole) (string, error) {
	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   accountRolesPath,
		Body:   &accountRoleCreateRequest{Name: role.Name, Permissions: role.Permissions},
	})
	if err != nil {
		return "", fmt.Errorf("creating account role: %w", err)
	}

	return id, nil
}

// Update implements atlas.AccountRolesClient.Update.
func (c *AccountRolesClient) Update(ctx context.Context, role *atlas.AccountRole) error {
	err := requireID(c.httpClient, role.ID())
	if err != nil {
		return fmt.Errorf("updating account role: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPut,
		Path:     accountRolesPath + "/{id}",
		Segments: map[string]string{"id": role.ID()},
		Body:     role,
	}, nil)
	if err != nil {
		return fmt.Errorf("updating account role: %w", err)
	}

	return nil
}

// Delete implements atlas.AccountRolesClient.Delete.
func (c *AccountRolesClient) Delete(ctx context.Context, id string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("deleting account role: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodDelete,
		Path:     accountRolesPath + "/{id}",
		Segments: map[string]string{"id": id},
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting account role: %w", err)
	}

	return nil
}

var _ atlas.AccountRolesClient = (*AccountRolesClient)(nil)
