// Package http implements the request executor shared by every resource
// client: header composition, body encoding, transport and classification of
// responses.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/atlas-cms/atlas-go/internal/codec"
	"github.com/atlas-cms/atlas-go/internal/constants"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// Request describes a single API call.
type Request struct {
	Method string
	// Path may contain {name} placeholders filled from Segments.
	Path     string
	Segments map[string]string
	// Query values. Empty values are dropped except page and size.
	Query url.Values
	// Body is encoded with the codec. Ignored when Multipart is set.
	Body      interface{}
	Multipart *Multipart
	// Token authenticates this request only, ahead of any other credential.
	Token   string
	Headers map[string]string
}

// Response is a fully read response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against the Atlas API. It is safe for concurrent
// use; the one-shot token set with UseToken is consumed by exactly one request.
type Client struct {
	baseURL    string
	apiKey     string
	projectKey string
	userAgent  string
	debug      bool

	httpClient   *retryablehttp.Client
	codec        *codec.Codec
	logger       atlas.Logger
	interceptors *atlas.InterceptorChain

	pending pendingToken
}

type pendingToken struct {
	mu    sync.Mutex
	value string
}

func (p *pendingToken) set(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.value = token
}

// take returns the pending token and clears the slot.
func (p *pendingToken) take() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	token := p.value
	p.value = ""

	return token
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger atlas.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig opts in to retries of connection errors, 429 and 5xx.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithProjectKey sends the project selector header with every request.
func WithProjectKey(projectKey string) Option {
	return func(c *Client) {
		c.projectKey = projectKey
	}
}

// WithCodec sets the body codec.
func WithCodec(bodyCodec *codec.Codec) Option {
	return func(c *Client) {
		if bodyCodec != nil {
			c.codec = bodyCodec
		}
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *atlas.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithTimeout sets the transport timeout of a single attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a client for baseURL authenticating with apiKey, which
// may be empty.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  constants.DefaultUserAgent,
		httpClient: retryClient,
		codec:      codec.New(nil),
		logger:     atlas.NopLogger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.Logger = &retryLogger{logger: client.logger}

	return client
}

// UseToken sets a token consumed by the next request, whatever its outcome.
func (c *Client) UseToken(token string) {
	c.pending.set(token)
}

// DiscardToken clears the pending one-shot token. Callers that reject a
// request before dispatch use it so the token never reaches a later call.
func (c *Client) DiscardToken() {
	c.pending.take()
}

// Codec returns the body codec.
func (c *Client) Codec() *codec.Codec {
	return c.codec
}

// Do executes req. Any status other than 200 returns *atlas.APIError together
// with the response; transport failures return *atlas.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, meta, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &atlas.TransportError{Method: req.Method, URL: meta.url, Err: err}
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	c.logResponse(meta, response.StatusCode, body)

	var apiErr error
	if response.StatusCode != http.StatusOK {
		apiErr = atlas.NewAPIError(response.StatusCode, body)
	}

	err = c.intercept(ctx, meta, response.StatusCode, response.Headers, body, apiErr)
	if apiErr != nil {
		return response, apiErr
	}

	if err != nil {
		return nil, err
	}

	return response, nil
}

// Send executes req and decodes a 200 body into out. A nil out discards the
// body.
func (c *Client) Send(ctx context.Context, req *Request, out interface{}) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return c.codec.Decode(resp.Body, out)
}

// Stream executes req and returns the body of a 200 response unread. The
// caller must close it.
func (c *Client) Stream(ctx context.Context, req *Request) (io.ReadCloser, error) {
	resp, meta, err := c.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		c.logResponse(meta, resp.StatusCode, nil)

		err = c.intercept(ctx, meta, resp.StatusCode, resp.Header, nil, nil)
		if err != nil {
			resp.Body.Close()

			return nil, err
		}

		return resp.Body, nil
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &atlas.TransportError{Method: req.Method, URL: meta.url, Err: err}
	}

	c.logResponse(meta, resp.StatusCode, body)

	apiErr := atlas.NewAPIError(resp.StatusCode, body)
	_ = c.intercept(ctx, meta, resp.StatusCode, resp.Header, body, apiErr)

	return nil, apiErr
}

// intercept runs the response interceptors for a classified response.
func (c *Client) intercept(ctx context.Context, meta requestMeta, status int, headers http.Header, body []byte, classified error) error {
	if meta.intercepted == nil {
		return nil
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, meta.intercepted, &atlas.InterceptedResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
		Error:      classified,
	})
}

type requestMeta struct {
	id          string
	method      string
	url         string
	start       time.Time
	intercepted *atlas.InterceptedRequest
}

func (c *Client) dispatch(ctx context.Context, req *Request) (*http.Response, requestMeta, error) {
	// Consumed before anything can fail so a token never leaks to a later call.
	pending := c.pending.take()

	token := req.Token
	if token == "" {
		token, _ = atlas.TokenFromContext(ctx)
	}

	if token == "" {
		token = pending
	}

	meta := requestMeta{id: uuid.NewString(), method: req.Method}

	target, err := c.buildURL(req)
	if err != nil {
		return nil, meta, err
	}

	meta.url = target

	httpReq, err := c.newRequest(ctx, req, target, token)
	if err != nil {
		return nil, meta, err
	}

	httpReq.Header.Set(constants.HeaderRequestID, meta.id)

	if c.interceptors != nil {
		meta.intercepted = &atlas.InterceptedRequest{Method: req.Method, URL: target, Headers: httpReq.Header}

		err = c.interceptors.ExecuteRequestInterceptors(ctx, meta.intercepted)
		if err != nil {
			return nil, meta, err
		}

		httpReq.Header = meta.intercepted.Headers
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"request_id": meta.id,
			"method":     req.Method,
			"url":        target,
		})
	}

	meta.start = time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.debug {
			c.logger.Error("HTTP Transport Error", map[string]interface{}{
				"request_id": meta.id,
				"method":     req.Method,
				"url":        target,
				"error":      err.Error(),
			})
		}

		return nil, meta, &atlas.TransportError{Method: req.Method, URL: target, Err: err}
	}

	return resp, meta, nil
}

func (c *Client) newRequest(ctx context.Context, req *Request, target, token string) (*retryablehttp.Request, error) {
	var (
		rawBody     interface{}
		contentType string
	)

	switch {
	case req.Multipart != nil:
		data, formType, err := req.Multipart.encode()
		if err != nil {
			return nil, fmt.Errorf("encoding multipart body: %w", err)
		}

		rawBody, contentType = data, formType
	case req.Body != nil:
		data, err := c.codec.Encode(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody, contentType = data, constants.ContentTypeJSON
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for name, values := range composeHeaders(c.apiKey, token, c.userAgent) {
		httpReq.Header[name] = values
	}

	if contentType != "" {
		httpReq.Header.Set(constants.HeaderContentType, contentType)
	}

	if c.projectKey != "" {
		httpReq.Header.Set(constants.HeaderProjectKey, c.projectKey)
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	return httpReq, nil
}

func (c *Client) buildURL(req *Request) (string, error) {
	path, err := expandPath(req.Path, req.Segments)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	target := c.baseURL + path

	if query := encodeQuery(req.Query); query != "" {
		target += "?" + query
	}

	return target, nil
}

// expandPath substitutes {name} placeholders with path-escaped segments.
func expandPath(template string, segments map[string]string) (string, error) {
	var builder strings.Builder

	rest := template

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			builder.WriteString(rest)

			return builder.String(), nil
		}

		length := strings.IndexByte(rest[open:], '}')
		if length < 0 {
			return "", fmt.Errorf("%w: %s", atlas.ErrMalformedPath, template)
		}

		name := rest[open+1 : open+length]

		value, ok := segments[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: %s", atlas.ErrMissingURLSegment, name)
		}

		builder.WriteString(rest[:open])
		builder.WriteString(url.PathEscape(value))

		rest = rest[open+length+1:]
	}
}

// encodeQuery drops empty values except page and size, which are always sent.
func encodeQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}

	kept := url.Values{}

	for key, values := range query {
		for _, value := range values {
			if value != "" || key == "page" || key == "size" {
				kept.Add(key, value)
			}
		}
	}

	return kept.Encode()
}

func (c *Client) logResponse(meta requestMeta, status int, body []byte) {
	if !c.debug {
		return
	}

	fields := map[string]interface{}{
		"request_id": meta.id,
		"method":     meta.method,
		"url":        meta.url,
		"status":     status,
		"duration":   time.Since(meta.start).String(),
	}

	if status != http.StatusOK && len(body) > 0 {
		fields["body"] = codec.Excerpt(body)
	}

	c.logger.Debug("HTTP Response", fields)
}
