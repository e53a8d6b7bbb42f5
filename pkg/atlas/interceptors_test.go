package atlas_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

var errStop = errors.New("stop")

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, level+":"+msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record("error", msg) }

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	var executionOrder []string

	chain := atlas.NewInterceptorChain().
		AddRequestInterceptor(func(context.Context, *atlas.InterceptedRequest) error {
			executionOrder = append(executionOrder, "first")

			return nil
		}).
		AddRequestInterceptor(func(context.Context, *atlas.InterceptedRequest) error {
			executionOrder = append(executionOrder, "second")

			return nil
		})

	err := chain.ExecuteRequestInterceptors(context.Background(), &atlas.InterceptedRequest{Method: "GET", URL: "/api/roles"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	called := false

	chain := atlas.NewInterceptorChain().
		AddResponseInterceptor(func(context.Context, *atlas.InterceptedRequest, *atlas.InterceptedResponse) error {
			return errStop
		}).
		AddResponseInterceptor(func(context.Context, *atlas.InterceptedRequest, *atlas.InterceptedResponse) error {
			called = true

			return nil
		})

	err := chain.ExecuteResponseInterceptors(context.Background(), &atlas.InterceptedRequest{}, &atlas.InterceptedResponse{})
	require.ErrorIs(t, err, errStop)
	assert.Contains(t, err.Error(), "response interceptor failed")
	assert.False(t, called)
}

func TestInterceptorChain_Nil(t *testing.T) {
	t.Parallel()

	var chain *atlas.InterceptorChain

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &atlas.InterceptedRequest{}))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &atlas.InterceptedRequest{}, &atlas.InterceptedResponse{}))
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := atlas.HeaderInterceptor(map[string]string{
		"X-Custom-Header": "custom-value",
		"X-Tenant":        "acme",
	})

	req := &atlas.InterceptedRequest{Method: "GET", URL: "/api/users"}

	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "custom-value", req.Headers.Get("X-Custom-Header"))
	assert.Equal(t, "acme", req.Headers.Get("X-Tenant"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	ctx := context.Background()
	req := &atlas.InterceptedRequest{Method: "GET", URL: "/api/users/1"}

	require.NoError(t, atlas.LoggingInterceptor(logger)(ctx, req))
	require.NoError(t, atlas.LoggingResponseInterceptor(logger)(ctx, req, &atlas.InterceptedResponse{StatusCode: http.StatusOK}))
	require.NoError(t, atlas.LoggingResponseInterceptor(logger)(ctx, req, &atlas.InterceptedResponse{
		StatusCode: http.StatusNotFound,
		Error:      atlas.NewAPIError(http.StatusNotFound, nil),
	}))

	assert.Equal(t, []string{"debug:API Request", "debug:API Response", "error:API Response Error"}, logger.messages)
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := atlas.NewMetricsCollector()
	assert.Nil(t, collector.GetMetrics("GET /api/roles"))

	var notified []string

	collector.SetOnChange(func(endpoint string, _ atlas.Metrics) {
		notified = append(notified, endpoint)
	})

	ctx := context.Background()
	before := atlas.MetricsRequestInterceptor()
	after := atlas.MetricsResponseInterceptor(collector)

	for _, resp := range []*atlas.InterceptedResponse{
		{StatusCode: http.StatusOK},
		{StatusCode: http.StatusInternalServerError, Error: atlas.NewAPIError(http.StatusInternalServerError, nil)},
	} {
		req := &atlas.InterceptedRequest{Method: "GET", URL: "/api/roles"}

		require.NoError(t, before(ctx, req))
		assert.Contains(t, req.Metadata, "start_time")
		require.NoError(t, after(ctx, req, resp))
	}

	metrics := collector.GetMetrics("GET /api/roles")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())
	assert.Equal(t, []string{"GET /api/roles", "GET /api/roles"}, notified)
}
