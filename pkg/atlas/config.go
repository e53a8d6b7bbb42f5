package atlas

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/atlas-cms/atlas-go/internal/constants"
)

// PropertyCasing selects how Go field names are written on the wire when a
// field carries no explicit json name.
type PropertyCasing string

const (
	// CasingCamel writes FirstName as "firstName".
	CasingCamel PropertyCasing = "camelCase"
	// CasingAsIs writes field names unchanged.
	CasingAsIs PropertyCasing = "asIs"
)

// EnumEncoding selects the wire form of values implementing Enum.
type EnumEncoding string

const (
	// EnumCamelCaseString writes enums as their camelCase name.
	EnumCamelCaseString EnumEncoding = "camelCaseString"
	// EnumNumber writes enums as their integer value.
	EnumNumber EnumEncoding = "number"
)

// CodecPolicy configures the serializer used for request and response bodies.
type CodecPolicy struct {
	// PropertyCasing applies to fields without an explicit json name.
	PropertyCasing PropertyCasing
	// WritePrivateFields binds unexported fields so read-only values populated
	// by the server survive decoding.
	WritePrivateFields bool
	// EnumEncoding selects names or numbers for enums.
	EnumEncoding EnumEncoding
}

// DefaultCodecPolicy returns camelCase names, private field write-through and
// enums encoded as camelCase strings.
func DefaultCodecPolicy() *CodecPolicy {
	return &CodecPolicy{
		PropertyCasing:     CasingCamel,
		WritePrivateFields: true,
		EnumEncoding:       EnumCamelCaseString,
	}
}

// Config represents client configuration for building an atlas.Client.
//
// # Authentication
//
// Every request carries at most one bearer credential, resolved in order:
//  1. a token attached to the call context with WithToken;
//  2. a one-shot token registered with Client.UseToken, consumed by the next
//     request whatever its outcome;
//  3. APIKey;
//  4. nothing: the request is sent without an Authorization header.
//
// # Timeouts and retries
//
// Per-request deadlines should be controlled via the context passed to client
// methods. The client never retries on its own; RetryMax opts in to retries of
// connection errors, 429 and 5xx responses.
type Config struct {
	// BaseURL: root of the Atlas API (e.g., "https://cms.example.com").
	// atlasclient.New trims a trailing slash and adds "https://" if no
	// scheme is present.
	BaseURL string
	// APIKey: static credential sent as a Bearer token when no per-call
	// token is set.
	APIKey string
	// ProjectKey: optional project selector sent with every request.
	ProjectKey string

	// Codec: serializer policy. Nil means DefaultCodecPolicy.
	Codec *CodecPolicy

	// HTTPTimeout: transport timeout for a single attempt.
	HTTPTimeout time.Duration
	// RetryMax: number of retries for transient failures. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPClient: optional underlying client, e.g. with a custom transport.
	HTTPClient *http.Client
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain
}

// Validate checks the fields required to build a client.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrBaseURLRequired
	}

	return nil
}

// CodecPolicyOrDefault returns the configured policy or the default one.
func (c *Config) CodecPolicyOrDefault() *CodecPolicy {
	if c.Codec == nil {
		return DefaultCodecPolicy()
	}

	return c.Codec
}

// configuration keys shared by files and ATLAS_* environment variables.
const (
	keyBaseURL      = "base_url"
	keyAPIKey       = "api_key"
	keyProjectKey   = "project_key"
	keyHTTPTimeout  = "http_timeout"
	keyRetryMax     = "retry_max"
	keyRetryWaitMin = "retry_wait_min"
	keyRetryWaitMax = "retry_wait_max"
	keyDebug        = "debug"
	keyUserAgent    = "user_agent"
)

// LoadConfig reads configuration from an optional file (YAML, JSON or TOML,
// chosen by extension) overlaid with ATLAS_* environment variables such as
// ATLAS_BASE_URL and ATLAS_API_KEY. An empty path reads the environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyHTTPTimeout, constants.DefaultHTTPTimeout)
	v.SetDefault(keyRetryMax, constants.DefaultRetryMax)
	v.SetDefault(keyRetryWaitMin, constants.DefaultRetryWaitMin)
	v.SetDefault(keyRetryWaitMax, constants.DefaultRetryWaitMax)
	v.SetDefault(keyDebug, false)

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	config := &Config{
		BaseURL:      v.GetString(keyBaseURL),
		APIKey:       v.GetString(keyAPIKey),
		ProjectKey:   v.GetString(keyProjectKey),
		HTTPTimeout:  v.GetDuration(keyHTTPTimeout),
		RetryMax:     v.GetInt(keyRetryMax),
		RetryWaitMin: v.GetDuration(keyRetryWaitMin),
		RetryWaitMax: v.GetDuration(keyRetryWaitMax),
		Debug:        v.GetBool(keyDebug),
		UserAgent:    v.GetString(keyUserAgent),
	}

	err := config.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return config, nil
}
