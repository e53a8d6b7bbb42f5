package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// schemaClient manages one kind of content-type schema.
type schemaClient struct {
	httpClient   *internalhttp.Client
	resourcePath string
	resourceName string
}

func (c *schemaClient) create(ctx context.Context, schema interface{}) (string, error) {
	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   c.resourcePath,
		Body:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	return id, nil
}

func (c *schemaClient) update(ctx context.Context, id string, schema interface{}) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPut,
		Path:     c.resourcePath + "/{id}",
		Segments: map[string]string{"id": id},
		Body:     schema,
	}, nil)
	if err != nil {
		return fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	return nil
}

// Delete removes a schema by ID.
func (c *schemaClient) Delete(ctx context.Context, id string) error {
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

// ModelsClient implements atlas.ModelsClient.
type ModelsClient struct {
	schemaClient
}

// NewModelsClient creates a new models client.
func NewModelsClient(httpClient *internalhttp.Client) *ModelsClient {
	return &ModelsClient{
		schemaClient: schemaClient{
			httpClient:   httpClient,
			resourcePath: "/api/content-types/models",
			resourceName: "model",
		},
	}
}

// Create implements atlas.ModelsClient.Create.
func (c *ModelsClient) Create(ctx context.Context, model *atlas.Model) (string, error) {
	return c.create(ctx, model)
}

// Update implements atlas.ModelsClient.Update.
func (c *ModelsClient) Update(ctx context.Context, model *atlas.Model) error {
	return c.update(ctx, model.ID, model)
}

// ComponentsClient implements atlas.ComponentsClient.
type ComponentsClient struct {
	schemaClient
}

// NewComponentsClient creates a new components client.
func NewComponentsClient(httpClient *internalhttp.Client) *ComponentsClient {
	return &ComponentsClient{
		schemaClient: schemaClient{
			httpClient:   httpClient,
			resourcePath: "/api/content-types/components",
			resourceName: "component",
		},
	}
}

// Create implements atlas.ComponentsClient.Create.
func (c *ComponentsClient) Create(ctx context.Context, component *atlas.Component) (string, error) {
	return c.create(ctx, component)
}

// Update implements atlas.ComponentsClient.Update.
func (c *ComponentsClient) Update(ctx context.Context, component *atlas.Component) error {
	return c.update(ctx, component.ID, component)
}

var (
	_ atlas.ModelsClient     = (*ModelsClient)(nil)
	_ atlas.ComponentsClient = (*ComponentsClient)(nil)
)
