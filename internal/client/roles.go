package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

const rolesPath = "/api/roles"

// RolesClient implements atlas.RolesClient.
type RolesClient struct {
	httpClient *internalhttp.Client
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *internalhttp.Client) *RolesClient {
	return &RolesClient{
		httpClient: httpClient,
	}
}

// List implements atlas.RolesClient.List.
func (c *RolesClient) List(ctx context.Context) ([]atlas.Role, error) {
	var roles []atlas.Role

	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   rolesPath,
	}, &roles)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	return roles, nil
}

// Create implements atlas.RolesClient.Create.
func (c *RolesClient) Create(ctx context.Context, role *atlas.Role) (string, error) {
	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   rolesPath,
		Body:   role,
	})
	if err != nil {
		return "", fmt.Errorf("creating role: %w", err)
	}

	return id, nil
}

// Update implements atlas.RolesClient.Update. The role is identified by the
// id carried in the body.
func (c *RolesClient) Update(ctx context.Context, role *atlas.Role) error {
	err := requireID(c.httpClient, role.ID())
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodPut,
		Path:   rolesPath,
		Body:   role,
	}, nil)
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}

	return nil
}

// Delete implements atlas.RolesClient.Delete.
func (c *RolesClient) Delete(ctx context.Context, id string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodDelete,
		Path:     rolesPath + "/{id}",
		Segments: map[string]string{"id": id},
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting role: %w", err)
	}

	return nil
}

var _ atlas.RolesClient = (*RolesClient)(nil)
