package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	atlashttp "github.com/atlas-cms/atlas-go/internal/http"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.record("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.record("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.record("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.record("error", msg, fields) }

// authRecorder serves 200 {} and records the Authorization header of each request.
type authRecorder struct {
	mu      sync.Mutex
	headers []string
	status  int
}

func (r *authRecorder) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	r.mu.Lock()
	r.headers = append(r.headers, request.Header.Get("Authorization"))
	status := r.status
	r.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}

	writer.WriteHeader(status)
	_, _ = writer.Write([]byte(`{}`))
}

func (r *authRecorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.headers...)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/users/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "Atlas CMS Go Client SDK", request.Header.Get("User-Agent"))
			assert.Equal(t, atlashttp.SDKHeaderValue(), request.Header.Get("X-Atlas-SDK"))
			assert.NotEmpty(t, request.Header.Get("X-Request-Id"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "42", "username": "ada"})
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "test-key")

		req := &atlashttp.Request{
			Method:   "GET",
			Path:     "/api/users/{id}",
			Segments: map[string]string{"id": "42"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "42", result["id"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/contents/posts", request.URL.Path)
			assert.Equal(t, "page=2&size=&sort=title", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "")

		req := &atlashttp.Request{
			Method: "GET",
			Path:   "/api/contents/posts",
			Query: url.Values{
				"page":   []string{"2"},
				"size":   []string{""},
				"sort":   []string{"title"},
				"search": []string{""},
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Ada", body["firstName"])

			_, _ = writer.Write([]byte(`{"result":"new-id"}`))
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "")

		req := &atlashttp.Request{
			Method: "POST",
			Path:   "/api/users/register",
			Body:   struct{ FirstName string }{FirstName: "Ada"},
		}

		var result atlas.KeyResult[string]

		err := client.Send(context.Background(), req, &result)
		require.NoError(t, err)
		assert.Equal(t, "new-id", result.Result)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"message":"Username taken","errors":[{"code":"duplicate","message":"exists"}]}`))
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "")

		req := &atlashttp.Request{
			Method: "POST",
			Path:   "/api/users/register",
			Body:   map[string]string{"username": "ada"},
		}

		resp, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, 422, resp.StatusCode)

		apiErr := &atlas.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, atlas.KindValidation, apiErr.Kind)
		assert.Equal(t, "Username taken", apiErr.Message)
		assert.JSONEq(t, `[{"code":"duplicate","message":"exists"}]`, string(apiErr.Errors))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "*/*", request.Header.Get("Accept"))
			assert.Equal(t, "project-1", request.Header.Get("X-Atlas-Project"))
			assert.Equal(t, "custom-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "",
			atlashttp.WithProjectKey("project-1"),
			atlashttp.WithUserAgent("custom-agent"),
		)

		req := &atlashttp.Request{
			Method: "GET",
			Path:   "/api/admin/settings",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
				"Accept":          "*/*",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("without credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, present := request.Header["Authorization"]
			assert.False(t, present)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "")

		_, err := client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"})
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := atlashttp.NewClient(server.URL, "", atlashttp.WithLogger(logger), atlashttp.WithDebug(true))

		req := &atlashttp.Request{
			Method: "GET",
			Path:   "/api/roles",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])

		requestFields, ok := logger.logs[0]["fields"].(map[string]interface{})
		require.True(t, ok)

		responseFields, ok := logger.logs[1]["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, requestFields["request_id"], responseFields["request_id"])
		assert.Equal(t, 200, responseFields["status"])
	})
}

func TestClient_SuccessIsOnly200(t *testing.T) {
	t.Parallel()

	statuses := map[int]atlas.ErrorKind{
		http.StatusCreated:             atlas.KindUnknown,
		http.StatusNoContent:           atlas.KindUnknown,
		http.StatusUnauthorized:        atlas.KindUnauthorized,
		http.StatusForbidden:           atlas.KindForbidden,
		http.StatusNotFound:            atlas.KindNotFound,
		http.StatusUnprocessableEntity: atlas.KindValidation,
		http.StatusTooManyRequests:     atlas.KindTooManyRequests,
		http.StatusInternalServerError: atlas.KindServerError,
		http.StatusBadGateway:          atlas.KindBadGateway,
		http.StatusServiceUnavailable:  atlas.KindServiceUnavailable,
		http.StatusGatewayTimeout:      atlas.KindGatewayTimeout,
	}

	for status, kind := range statuses {
		status, kind := status, kind
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := atlashttp.NewClient(server.URL, "key")

			var out map[string]interface{}

			err := client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"}, &out)

			var apiErr *atlas.APIError

			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, status, apiErr.StatusCode)
			assert.Equal(t, kind, apiErr.Kind)
			assert.NotEmpty(t, apiErr.Message)
			assert.Nil(t, out)
		})
	}

	t.Run("OK", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "key")

		var out map[string]interface{}

		err := client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"}, &out)
		require.NoError(t, err)
		assert.Nil(t, out)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_UseToken(t *testing.T) {
	t.Parallel()

	t.Run("token is used once", func(t *testing.T) {
		t.Parallel()

		recorder := &authRecorder{}
		server := httptest.NewServer(recorder)
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "static-key")
		client.UseToken("X")

		req := &atlashttp.Request{Method: "GET", Path: "/api/users/1"}

		require.NoError(t, client.Send(context.Background(), req, nil))
		require.NoError(t, client.Send(context.Background(), req, nil))

		assert.Equal(t, []string{"Bearer X", "Bearer static-key"}, recorder.seen())
	})

	t.Run("token is cleared when the request fails", func(t *testing.T) {
		t.Parallel()

		recorder := &authRecorder{status: http.StatusInternalServerError}
		server := httptest.NewServer(recorder)
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "static-key")
		client.UseToken("X")

		req := &atlashttp.Request{Method: "GET", Path: "/api/users/1"}

		err := client.Send(context.Background(), req, nil)
		require.Error(t, err)
		assert.True(t, atlas.IsServerError(err))

		_ = client.Send(context.Background(), req, nil)

		assert.Equal(t, []string{"Bearer X", "Bearer static-key"}, recorder.seen())
	})

	t.Run("token is cleared when the request cannot be built", func(t *testing.T) {
		t.Parallel()

		recorder := &authRecorder{}
		server := httptest.NewServer(recorder)
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "static-key")
		client.UseToken("X")

		err := client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/users/{id}"}, nil)
		require.ErrorIs(t, err, atlas.ErrMissingURLSegment)

		require.NoError(t, client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"}, nil))
		assert.Equal(t, []string{"Bearer static-key"}, recorder.seen())
	})

	t.Run("token is cleared when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		recorder := &authRecorder{}
		server := httptest.NewServer(recorder)
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "static-key")
		client.UseToken("X")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := client.Send(ctx, &atlashttp.Request{Method: "GET", Path: "/api/roles"}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, atlas.IsTransport(err))

		require.NoError(t, client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"}, nil))
		assert.Equal(t, []string{"Bearer static-key"}, recorder.seen())
	})

	t.Run("context token wins and still clears the pending token", func(t *testing.T) {
		t.Parallel()

		recorder := &authRecorder{}
		server := httptest.NewServer(recorder)
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "static-key")
		client.UseToken("pending")

		ctx := atlas.WithToken(context.Background(), "scoped")
		require.NoError(t, client.Send(ctx, &atlashttp.Request{Method: "GET", Path: "/api/roles"}, nil))
		require.NoError(t, client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"}, nil))
		require.NoError(t, client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles", Token: "descriptor"}, nil))

		assert.Equal(t, []string{"Bearer scoped", "Bearer static-key", "Bearer descriptor"}, recorder.seen())
	})

	t.Run("discarded token is never sent", func(t *testing.T) {
		t.Parallel()

		recorder := &authRecorder{}
		server := httptest.NewServer(recorder)
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "static-key")
		client.UseToken("X")
		client.DiscardToken()

		require.NoError(t, client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"}, nil))
		assert.Equal(t, []string{"Bearer static-key"}, recorder.seen())
	})

	t.Run("concurrent requests consume the token once", func(t *testing.T) {
		t.Parallel()

		recorder := &authRecorder{}
		server := httptest.NewServer(recorder)
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "static-key")
		client.UseToken("X")

		var wg sync.WaitGroup

		for n := 0; n < 8; n++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_ = client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"}, nil)
			}()
		}

		wg.Wait()

		oneShot := 0

		for _, header := range recorder.seen() {
			if header == "Bearer X" {
				oneShot++
			}
		}

		assert.Equal(t, 1, oneShot)
		assert.Len(t, recorder.seen(), 8)
	})
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	target := server.URL
	server.Close()

	client := atlashttp.NewClient(target, "key")

	_, err := client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/roles"})
	require.Error(t, err)

	var transportErr *atlas.TransportError

	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "GET", transportErr.Method)
	assert.Equal(t, target+"/api/roles", transportErr.URL)

	var apiErr *atlas.APIError

	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_DecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`["not","an","object"]`))
	}))
	defer server.Close()

	client := atlashttp.NewClient(server.URL, "key")

	var out atlas.User

	err := client.Send(context.Background(), &atlashttp.Request{Method: "GET", Path: "/api/users/1"}, &out)

	var decodeErr *atlas.DecodeError

	require.ErrorAs(t, err, &decodeErr)
	assert.Contains(t, decodeErr.Body, "not")
}

func TestClient_Multipart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		mediaType, params, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
		assert.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(request.Body, params["boundary"])

		part, err := reader.NextPart()
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, "folder", part.FormName())

		value, _ := io.ReadAll(part)
		assert.Equal(t, "/images", string(value))

		part, err = reader.NextPart()
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, "file", part.FormName())
		assert.Equal(t, "logo.png", part.FileName())
		assert.Equal(t, "image/png", part.Header.Get("Content-Type"))

		content, _ := io.ReadAll(part)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)

		_, _ = writer.Write([]byte(`{"result":"asset-1"}`))
	}))
	defer server.Close()

	client := atlashttp.NewClient(server.URL, "key")

	var result atlas.KeyResult[string]

	err := client.Send(context.Background(), &atlashttp.Request{
		Method: "POST",
		Path:   "/api/media-library/media/upload",
		Multipart: &atlashttp.Multipart{
			FileName: "logo.png",
			Content:  []byte{0x89, 'P', 'N', 'G'},
			Fields:   map[string]string{"folder": "/images"},
		},
	}, &result)
	require.NoError(t, err)
	assert.Equal(t, "asset-1", result.Result)
}

func TestClient_Stream(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/missing" {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		_, _ = writer.Write([]byte("binary-content"))
	}))
	defer server.Close()

	client := atlashttp.NewClient(server.URL, "key")

	body, err := client.Stream(context.Background(), &atlashttp.Request{Method: "GET", Path: "/file"})
	require.NoError(t, err)

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.Equal(t, "binary-content", string(content))

	_, err = client.Stream(context.Background(), &atlashttp.Request{Method: "GET", Path: "/missing"})
	assert.True(t, atlas.IsNotFound(err))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("does not retry by default", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "")

		resp, err := client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/test"})
		require.Error(t, err)
		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "", atlashttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/test"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), attempts.Load())
	})

	t.Run("retries on rate limiting", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) < 2 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "", atlashttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Do(context.Background(), &atlashttp.Request{Method: "POST", Path: "/test", Body: map[string]int{"n": 1}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := atlashttp.NewClient(server.URL, "", atlashttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/test"})
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), attempts.Load()) // Should not retry
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	var tenant atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		tenant.Store(request.Header.Get("X-Tenant"))

		if request.URL.Path == "/missing" {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	var statuses []int

	chain := atlas.NewInterceptorChain().
		AddRequestInterceptor(atlas.HeaderInterceptor(map[string]string{"X-Tenant": "acme"})).
		AddResponseInterceptor(func(_ context.Context, _ *atlas.InterceptedRequest, resp *atlas.InterceptedResponse) error {
			statuses = append(statuses, resp.StatusCode)

			return nil
		})

	client := atlashttp.NewClient(server.URL, "key", atlashttp.WithInterceptors(chain))

	_, err := client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/found"})
	require.NoError(t, err)
	assert.Equal(t, "acme", tenant.Load())

	_, err = client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/missing"})
	require.ErrorIs(t, err, atlas.ErrNotFound)

	body, err := client.Stream(context.Background(), &atlashttp.Request{Method: "GET", Path: "/found"})
	require.NoError(t, err)
	require.NoError(t, body.Close())

	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound, http.StatusOK}, statuses)

	t.Run("request interceptor error aborts", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		blocked := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			hits.Add(1)
		}))
		defer blocked.Close()

		failing := atlas.NewInterceptorChain().
			AddRequestInterceptor(func(context.Context, *atlas.InterceptedRequest) error {
				return errInterceptor
			})

		client := atlashttp.NewClient(blocked.URL, "key", atlashttp.WithInterceptors(failing))

		_, err := client.Do(context.Background(), &atlashttp.Request{Method: "GET", Path: "/found"})
		require.ErrorIs(t, err, errInterceptor)
		assert.Equal(t, int32(0), hits.Load())
	})
}

var errInterceptor = errors.New("interceptor rejected request")
