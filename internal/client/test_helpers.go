package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlas-cms/atlas-go/internal/constants"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// testAPIKey authenticates every test client.
const testAPIKey = "test-key"

// RecordedRequest is what a test server saw of one request.
type RecordedRequest struct {
	Method   string
	Path     string
	RawPath  string
	Query    string
	Headers  http.Header
	Body     []byte
	Received bool
}

// RequestRecorder captures the last request received by a test server.
type RequestRecorder struct {
	mu      sync.Mutex
	request RecordedRequest
}

func (r *RequestRecorder) record(request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.request = RecordedRequest{
		Method:   request.Method,
		Path:     request.URL.Path,
		RawPath:  request.URL.EscapedPath(),
		Query:    request.URL.RawQuery,
		Headers:  request.Header.Clone(),
		Body:     body,
		Received: true,
	}
}

// Last returns the last recorded request.
func (r *RequestRecorder) Last() RecordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.request
}

// NewTestServer starts a server answering every request with statusCode and
// body.
func NewTestServer(t *testing.T, statusCode int, body string) (*httptest.Server, *RequestRecorder) {
	t.Helper()

	recorder := &RequestRecorder{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		recorder.record(request)

		writer.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		writer.WriteHeader(statusCode)
		_, _ = io.WriteString(writer, body)
	}))
	t.Cleanup(server.Close)

	return server, recorder
}

// NewTestClient returns a client pointed at a server created by NewTestServer.
func NewTestClient(t *testing.T, statusCode int, body string) (*Client, *RequestRecorder) {
	t.Helper()

	server, recorder := NewTestServer(t, statusCode, body)

	client, err := New(&atlas.Config{BaseURL: server.URL, APIKey: testAPIKey})
	require.NoError(t, err)

	return client, recorder
}

// TestCreateOperation represents a generic create operation test case.
type TestCreateOperation struct {
	Name         string
	ExpectedPath string
	// ExpectedBody is compared as JSON when set.
	ExpectedBody string
	StatusCode   int
	Response     string
	WantID       string
	WantErr      error
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     string
	Check        func(*testing.T, *TResponse)
	WantErr      error
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	WantErr      error
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests(
	t *testing.T,
	tests []TestCreateOperation,
	createFunc func(*Client) func(context.Context) (string, error),
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			client, recorder := NewTestClient(t, testCase.StatusCode, testCase.Response)

			id, err := createFunc(client)(context.Background())

			request := recorder.Last()
			if testCase.ExpectedPath != "" {
				assert.Equal(t, http.MethodPost, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.Path)
			}

			if testCase.ExpectedBody != "" {
				assert.JSONEq(t, testCase.ExpectedBody, string(request.Body))
			}

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)
				assert.Empty(t, id)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.WantID, id)
		})
	}
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			client, recorder := NewTestClient(t, testCase.StatusCode, testCase.Response)

			result, err := getFunc(client)(context.Background(), testCase.ID)

			request := recorder.Last()
			if testCase.ExpectedPath != "" {
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.Path)
			}

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			client, recorder := NewTestClient(t, testCase.StatusCode, "")

			err := deleteFunc(client)(context.Background(), testCase.ID)

			request := recorder.Last()
			if testCase.ExpectedPath != "" {
				assert.Equal(t, http.MethodDelete, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.Path)
			}

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

// AssertNoRequest asserts that validation failed before anything was sent.
func AssertNoRequest(t *testing.T, recorder *RequestRecorder) {
	t.Helper()

	assert.False(t, recorder.Last().Received, "no request should reach the server")
}
