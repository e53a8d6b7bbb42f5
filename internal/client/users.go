package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

const (
	usersPath = "/api/users"
	userPath  = usersPath + "/{id}"
)

// UsersClient implements atlas.UsersClient.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

type passwordRequest struct {
	Password string
}

// Get implements atlas.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*atlas.User, error) {
	var user atlas.User

	err := c.GetInto(ctx, id, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetInto implements atlas.UsersClient.GetInto.
func (c *UsersClient) GetInto(ctx context.Context, id string, out interface{}) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     userPath,
		Segments: map[string]string{"id": id},
	}, out)
	if err != nil {
		return fmt.Errorf("getting user: %w", err)
	}

	return nil
}

// List implements atlas.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, query *atlas.UsersQuery) (*atlas.PagedList[atlas.User], error) {
	var list atlas.PagedList[atlas.User]

	err := c.ListInto(ctx, query, &list)
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// ListInto implements atlas.UsersClient.ListInto.
func (c *UsersClient) ListInto(ctx context.Context, query *atlas.UsersQuery, out interface{}) error {
	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   usersPath,
		Query:  query.ToValues(),
	}, out)
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}

	return nil
}

// Register implements atlas.UsersClient.Register.
func (c *UsersClient) Register(ctx context.Context, user interface{}) (string, error) {
	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   usersPath + "/register",
		Body:   user,
	})
	if err != nil {
		return "", fmt.Errorf("registering user: %w", err)
	}

	return id, nil
}

// Update implements atlas.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, id string, user interface{}) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPut,
		Path:     userPath,
		Segments: map[string]string{"id": id},
		Body:     user,
	}, nil)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// ChangePassword implements atlas.UsersClient.ChangePassword.
func (c *UsersClient) ChangePassword(ctx context.Context, id, newPassword string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("changing user password: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPost,
		Path:     userPath,
		Segments: map[string]string{"id": id},
		Body:     &passwordRequest{Password: newPassword},
	}, nil)
	if err != nil {
		return fmt.Errorf("changing user password: %w", err)
	}

	return nil
}

// Delete implements atlas.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodDelete,
		Path:     userPath,
		Segments: map[string]string{"id": id},
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// Login implements atlas.UsersClient.Login. Rejected credentials return a
// nil token and no error.
func (c *UsersClient) Login(ctx context.Context, username, password string) (*atlas.AuthToken, error) {
	return login(ctx, c.httpClient, usersPath+"/login", username, password)
}

var _ atlas.UsersClient = (*UsersClient)(nil)
