package constants

import "time"

// SDK identification.
const (
	// SDKName is the identifier sent in the SDK header.
	SDKName = "atlas-go"

	// DefaultUserAgent is sent unless the configuration overrides it.
	DefaultUserAgent = "Atlas CMS Go Client SDK"
)

// Version is the SDK version reported in the SDK header. Overridden at build
// time with -ldflags "-X github.com/atlas-cms/atlas-go/internal/constants.Version=...".
var Version = "1.0.0"

// Header names.
const (
	// HeaderAuthorization carries the bearer credential.
	HeaderAuthorization = "Authorization"

	// HeaderSDK identifies the SDK name, version and client OS.
	HeaderSDK = "X-Atlas-SDK"

	// HeaderUserAgent is the standard user agent header.
	HeaderUserAgent = "User-Agent"

	// HeaderContentType is the standard content type header.
	HeaderContentType = "Content-Type"

	// HeaderAccept is the standard accept header.
	HeaderAccept = "Accept"

	// HeaderRequestID correlates a request with its log records.
	HeaderRequestID = "X-Request-Id"

	// HeaderProjectKey selects a project on multi-project installations.
	HeaderProjectKey = "X-Atlas-Project"
)

// Content types.
const (
	// ContentTypeJSON is used for every JSON request body.
	ContentTypeJSON = "application/json"

	// ContentTypeOctetStream is the fallback type of uploaded files.
	ContentTypeOctetStream = "application/octet-stream"
)

// Client operating system labels.
const (
	OSWindows = "Windows"
	OSMacOS   = "macOS"
	OSLinux   = "Linux"

	// OSDefault is used when the platform is not one of the known labels.
	OSDefault = OSLinux
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. The request pipeline does not retry unless RetryMax is set.
const (
	// DefaultRetryMax is the number of retries performed by default.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination defaults for list queries.
const (
	// DefaultPage is the first page of a list.
	DefaultPage = 1

	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 25
)

// Logging limits.
const (
	// MaxLoggedBodyBytes caps how much of a body is copied into log records
	// and decode errors.
	MaxLoggedBodyBytes = 512
)

// Environment variables read by the configuration loader.
const (
	EnvPrefix = "ATLAS"

	EnvBaseURL     = "ATLAS_BASE_URL"
	EnvAPIKey      = "ATLAS_API_KEY"
	EnvProjectKey  = "ATLAS_PROJECT_KEY"
	EnvHTTPTimeout = "ATLAS_HTTP_TIMEOUT"
	EnvRetryMax    = "ATLAS_RETRY_MAX"
	EnvDebug       = "ATLAS_DEBUG"
)
