package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

const (
	contentsPath = "/api/contents/{model}"
	contentPath  = "/api/contents/{model}/{id}"
)

// ContentsClient implements atlas.ContentsClient.
type ContentsClient struct {
	httpClient *internalhttp.Client
}

// NewContentsClient creates a new contents client.
func NewContentsClient(httpClient *internalhttp.Client) *ContentsClient {
	return &ContentsClient{
		httpClient: httpClient,
	}
}

// Create implements atlas.ContentsClient.Create.
func (c *ContentsClient) Create(ctx context.Context, modelKey string, attributes interface{}, locale string) (string, error) {
	err := requireModelKey(c.httpClient, modelKey)
	if err != nil {
		return "", fmt.Errorf("creating content: %w", err)
	}

	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method:   http.MethodPost,
		Path:     contentsPath,
		Segments: map[string]string{"model": modelKey},
		Query:    url.Values{"locale": {locale}},
		Body:     attributes,
	})
	if err != nil {
		return "", fmt.Errorf("creating content: %w", err)
	}

	return id, nil
}

// CreateTranslation implements atlas.ContentsClient.CreateTranslation.
func (c *ContentsClient) CreateTranslation(ctx context.Context, modelKey, id, locale string) (string, error) {
	segments, err := contentSegments(c.httpClient, modelKey, id)
	if err != nil {
		return "", fmt.Errorf("creating translation: %w", err)
	}

	segments["locale"] = locale

	translationID, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method:   http.MethodPost,
		Path:     contentPath + "/create-translation/{locale}",
		Segments: segments,
	})
	if err != nil {
		return "", fmt.Errorf("creating translation: %w", err)
	}

	return translationID, nil
}

// Duplicate implements atlas.ContentsClient.Duplicate.
func (c *ContentsClient) Duplicate(ctx context.Context, modelKey, id string) (string, error) {
	segments, err := contentSegments(c.httpClient, modelKey, id)
	if err != nil {
		return "", fmt.Errorf("duplicating content: %w", err)
	}

	duplicateID, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method:   http.MethodPost,
		Path:     contentPath + "/duplicate",
		Segments: segments,
	})
	if err != nil {
		return "", fmt.Errorf("duplicating content: %w", err)
	}

	return duplicateID, nil
}

// DuplicateAll implements atlas.ContentsClient.DuplicateAll.
func (c *ContentsClient) DuplicateAll(ctx context.Context, modelKey, id string) ([]string, error) {
	segments, err := contentSegments(c.httpClient, modelKey, id)
	if err != nil {
		return nil, fmt.Errorf("duplicating content locales: %w", err)
	}

	var result atlas.KeyResult[[]string]

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPost,
		Path:     contentPath + "/duplicate-all",
		Segments: segments,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("duplicating content locales: %w", err)
	}

	return result.Result, nil
}

// Get implements atlas.ContentsClient.Get.
func (c *ContentsClient) Get(ctx context.Context, modelKey, id string) (*atlas.Content[atlas.Attributes], error) {
	var content atlas.Content[atlas.Attributes]

	err := c.GetInto(ctx, modelKey, id, &content)
	if err != nil {
		return nil, err
	}

	return &content, nil
}

// GetInto implements atlas.ContentsClient.GetInto.
func (c *ContentsClient) GetInto(ctx context.Context, modelKey, id string, out interface{}) error {
	segments, err := contentSegments(c.httpClient, modelKey, id)
	if err != nil {
		return fmt.Errorf("getting content: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     contentPath,
		Segments: segments,
	}, out)
	if err != nil {
		return fmt.Errorf("getting content: %w", err)
	}

	return nil
}

// List implements atlas.ContentsClient.List.
func (c *ContentsClient) List(ctx context.Context, modelKey string, query *atlas.ContentsQuery) (*atlas.PagedList[atlas.Content[atlas.Attributes]], error) {
	var list atlas.PagedList[atlas.Content[atlas.Attributes]]

	err := c.ListInto(ctx, modelKey, query, &list)
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// ListInto implements atlas.ContentsClient.ListInto.
func (c *ContentsClient) ListInto(ctx context.Context, modelKey string, query *atlas.ContentsQuery, out interface{}) error {
	err := requireModelKey(c.httpClient, modelKey)
	if err != nil {
		return fmt.Errorf("listing contents: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     contentsPath,
		Segments: map[string]string{"model": modelKey},
		Query:    query.ToValues(),
	}, out)
	if err != nil {
		return fmt.Errorf("listing contents: %w", err)
	}

	return nil
}

// Update implements atlas.ContentsClient.Update.
func (c *ContentsClient) Update(ctx context.Context, modelKey, id string, attributes interface{}) error {
	segments, err := contentSegments(c.httpClient, modelKey, id)
	if err != nil {
		return fmt.Errorf("updating content: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodPut,
		Path:     contentPath,
		Segments: segments,
		Body:     attributes,
	}, nil)
	if err != nil {
		return fmt.Errorf("updating content: %w", err)
	}

	return nil
}

// Delete implements atlas.ContentsClient.Delete.
func (c *ContentsClient) Delete(ctx context.Context, modelKey, id string) error {
	segments, err := contentSegments(c.httpClient, modelKey, id)
	if err != nil {
		return fmt.Errorf("deleting content: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodDelete,
		Path:     contentPath,
		Segments: segments,
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting content: %w", err)
	}

	return nil
}

func contentSegments(httpClient *internalhttp.Client, modelKey, id string) (map[string]string, error) {
	err := requireModelKey(httpClient, modelKey)
	if err != nil {
		return nil, err
	}

	err = requireID(httpClient, id)
	if err != nil {
		return nil, err
	}

	return map[string]string{"model": modelKey, "id": id}, nil
}

var _ atlas.ContentsClient = (*ContentsClient)(nil)
