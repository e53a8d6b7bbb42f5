package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// AdminResource constrains the management resources served by
// AdminResourceClient.
type AdminResource interface {
	atlas.APIKey | atlas.Webhook
}

// AdminResourceClient provides a generic client for management resources
// addressed as {resourcePath} and {resourcePath}/{id}.
type AdminResourceClient[T AdminResource] struct {
	httpClient   *internalhttp.Client
	resourcePath string
	resourceName string
}

// NewAdminResourceClient creates a new generic management resource client.
func NewAdminResourceClient[T AdminResource](httpClient *internalhttp.Client, resourcePath, resourceName string) *AdminResourceClient[T] {
	return &AdminResourceClient[T]{
		httpClient:   httpClient,
		resourcePath: resourcePath,
		resourceName: resourceName,
	}
}

// Get retrieves a resource by ID.
func (c *AdminResourceClient[T]) Get(ctx context.Context, id string) (*T, error) {
	err := requireID(c.httpClient, id)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	var resource T

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     c.resourcePath + "/{id}",
		Segments: map[string]string{"id": id},
	}, &resource)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	return &resource, nil
}

// List retrieves every resource.
func (c *AdminResourceClient[T]) List(ctx context.Context) ([]T, error) {
	var resources []T

	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   c.resourcePath,
	}, &resources)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", c.resourceName, err)
	}

	return resources, nil
}

// Delete removes a resource by ID.
func (c *AdminResourceClient[T]) Delete(ctx context.Context, id string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.resourceName, err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodDelete,
		Path:     c.resourcePath + "/{id}",
		Segments: map[string]string{"id": id},
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.resourceName, err)
	}

	return nil
}

func (c *AdminResourceClient[T]) create(ctx context.Context, body interface{}) (string, error) {
	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   c.resourcePath,
		Body:   body,
	})
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	return id, nil
}

func (c *AdminResourceClient[T]) update(ctx context.Context, id string, body interface{}) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPut,
		Path:     c.resourcePath + "/{id}",
		Segments: map[string]string{"id": id},
		Body:     body,
	}, nil)
	if err != nil {
		return fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	return nil
}

// requireID rejects blank identifiers before any request is sent. A rejected
// call still consumes the pending one-shot token.
func requireID(httpClient *internalhttp.Client, id string) error {
	return requireValue(httpClient, id, atlas.ErrIDRequired)
}

func requireModelKey(httpClient *internalhttp.Client, modelKey string) error {
	return requireValue(httpClient, modelKey, atlas.ErrModelKeyRequired)
}

func requireValue(httpClient *internalhttp.Client, value string, errMissing error) error {
	if strings.TrimSpace(value) == "" {
		httpClient.DiscardToken()

		return errMissing
	}

	return nil
}

// postForKey sends req and returns the key of the created resource.
func postForKey(ctx context.Context, httpClient *internalhttp.Client, req *internalhttp.Request) (string, error) {
	var result atlas.KeyResult[string]

	err := httpClient.Send(ctx, req, &result)
	if err != nil {
		return "", err
	}

	return result.Result, nil
}

// login posts credentials and maps a rejected login to a nil token.
func login(ctx context.Context, httpClient *internalhttp.Client, path, username, password string) (*atlas.AuthToken, error) {
	var token atlas.AuthToken

	err := httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   &atlas.Credentials{Username: username, Password: password},
	}, &token)
	if err != nil {
		if atlas.IsUnauthorized(err) {
			return nil, nil //nolint:nilnil // a rejected login is not an error
		}

		return nil, fmt.Errorf("logging in: %w", err)
	}

	return &token, nil
}
