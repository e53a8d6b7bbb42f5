package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/atlas-cms/atlas-go/internal/constants"
	internalhttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

const (
	assetsPath    = "/api/media-library/media"
	assetPath     = assetsPath + "/{id}"
	defaultFolder = "/"
)

// AssetsClient implements atlas.AssetsClient.
type AssetsClient struct {
	httpClient *internalhttp.Client
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(httpClient *internalhttp.Client) *AssetsClient {
	return &AssetsClient{
		httpClient: httpClient,
	}
}

// Get implements atlas.AssetsClient.Get.
func (c *AssetsClient) Get(ctx context.Context, id string) (*atlas.Asset, error) {
	err := requireID(c.httpClient, id)
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}

	var asset atlas.Asset

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     assetPath,
		Segments: map[string]string{"id": id},
	}, &asset)
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return &asset, nil
}

// List implements atlas.AssetsClient.List.
func (c *AssetsClient) List(ctx context.Context, query *atlas.AssetsQuery) (*atlas.PagedList[atlas.Asset], error) {
	var list atlas.PagedList[atlas.Asset]

	err := c.httpClient.Send(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   assetsPath,
		Query:  query.ToValues(),
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	return &list, nil
}

// Upload implements atlas.AssetsClient.Upload. An empty folder uploads to
// the root folder.
func (c *AssetsClient) Upload(ctx context.Context, fileName string, content []byte, folder string) (string, error) {
	if folder == "" {
		folder = defaultFolder
	}

	id, err := postForKey(ctx, c.httpClient, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   assetsPath + "/upload",
		Multipart: &internalhttp.Multipart{
			FileName: fileName,
			Content:  content,
			Fields:   map[string]string{"folder": folder},
		},
	})
	if err != nil {
		return "", fmt.Errorf("uploading asset %s: %w", fileName, err)
	}

	return id, nil
}

// Download implements atlas.AssetsClient.Download.
func (c *AssetsClient) Download(ctx context.Context, id string) ([]byte, error) {
	err := requireID(c.httpClient, id)
	if err != nil {
		return nil, fmt.Errorf("downloading asset: %w", err)
	}

	resp, err := c.httpClient.Do(ctx, downloadRequest(id))
	if err != nil {
		return nil, fmt.Errorf("downloading asset: %w", err)
	}

	return resp.Body, nil
}

// DownloadStream implements atlas.AssetsClient.DownloadStream. The caller
// must close the returned reader.
func (c *AssetsClient) DownloadStream(ctx context.Context, id string) (io.ReadCloser, error) {
	err := requireID(c.httpClient, id)
	if err != nil {
		return nil, fmt.Errorf("downloading asset: %w", err)
	}

	body, err := c.httpClient.Stream(ctx, downloadRequest(id))
	if err != nil {
		return nil, fmt.Errorf("downloading asset: %w", err)
	}

	return body, nil
}

// Delete implements atlas.AssetsClient.Delete.
func (c *AssetsClient) Delete(ctx context.Context, id string) error {
	err := requireID(c.httpClient, id)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	err = c.httpClient.Send(ctx, &internalhttp.Request{
		Method:   http.MethodDelete,
		Path:     assetPath,
		Segments: map[string]string{"id": id},
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	return nil
}

func downloadRequest(id string) *internalhttp.Request {
	return &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     assetPath + "/download",
		Segments: map[string]string{"id": id},
		Headers:  map[string]string{constants.HeaderAccept: constants.ContentTypeOctetStream},
	}
}

var _ atlas.AssetsClient = (*AssetsClient)(nil)
