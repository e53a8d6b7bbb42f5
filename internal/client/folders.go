package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

const foldersPath = "/api/media-library/folders"

// FoldersClient implements atlas.FoldersClient.
type FoldersClient struct {
	httpClient *internalhttp.Client
}

// NewFoldersClient creates a new folders client.
func NewFoldersClient(httpClient *internalhttp.Client) *FoldersClient {
	return &FoldersClient{
		httpClient: httpClient,
	}
}

type folderRequest struct {
	Path   string
	MoveTo string `json:",omitempty"`
	Name   string `json:",omitempty"`
}

// Create implements atlas.FoldersClient.Create.
func (c *FoldersClient) Create(ctx context.Context, path string) (string, error) {
	err := requirePath(c.httpClient, path)
	if err != nil {
		return "", fmt.Errorf("creating folder: %w", err)
	}

	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   foldersPath,
		Body:   &folderRequest{Path: path},
	})
	if err != nil {
		return "", fmt.Errorf("creating folder %s: %w", path, err)
	}

	return id, nil
}

// List implements atlas.FoldersClient.List.
func (c *FoldersClient) List(ctx context.Context) ([]atlas.Folder, error) {
	var folders []atlas.Folder

	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   foldersPath,
	}, &folders)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	return folders, nil
}

// Move implements atlas.FoldersClient.Move.
func (c *FoldersClient) Move(ctx context.Context, path, moveTo string) (string, error) {
	err := requirePath(c.httpClient, path)
	if err != nil {
		return "", fmt.Errorf("moving folder: %w", err)
	}

	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   foldersPath + "/move",
		Body:   &folderRequest{Path: path, MoveTo: moveTo},
	})
	if err != nil {
		return "", fmt.Errorf("moving folder %s: %w", path, err)
	}

	return id, nil
}

// Rename implements atlas.FoldersClient.Rename.
func (c *FoldersClient) Rename(ctx context.Context, path, newName string) (string, error) {
	err := requirePath(c.httpClient, path)
	if err != nil {
		return "", fmt.Errorf("renaming folder: %w", err)
	}

	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   foldersPath + "/rename",
		Body:   &folderRequest{Path: path, Name: newName},
	})
	if err != nil {
		return "", fmt.Errorf("renaming folder %s: %w", path, err)
	}

	return id, nil
}

// Delete implements atlas.FoldersClient.Delete.
func (c *FoldersClient) Delete(ctx context.Context, path string) error {
	err := requirePath(c.httpClient, path)
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodDelete,
		Path:   foldersPath,
		Query:  url.Values{"path": {path}},
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting folder %s: %w", path, err)
	}

	return nil
}

func requirePath(httpClient *internalhttp.Client, path string) error {
	return requireValue(httpClient, path, atlas.ErrFolderPathRequired)
}

var _ atlas.FoldersClient = (*FoldersClient)(nil)
