package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// ErrorKind classifies an APIError by the HTTP status family it came from.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindValidation
	KindTooManyRequests
	KindServerError
	KindBadGateway
	KindServiceUnavailable
	KindGatewayTimeout
)

var errorKindNames = []string{
	"unknown",
	"notFound",
	"unauthorized",
	"forbidden",
	"badRequest",
	"validation",
	"tooManyRequests",
	"serverError",
	"badGateway",
	"serviceUnavailable",
	"gatewayTimeout",
}

// EnumNames implements Enum.
func (k ErrorKind) EnumNames() []string {
	return errorKindNames
}

// String returns the camelCase name of the kind.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return errorKindNames[KindUnknown]
	}

	return errorKindNames[k]
}

// statusClass holds the kind and default message for one status code.
type statusClass struct {
	kind    ErrorKind
	message string
}

// DefaultErrorMessage is used for status codes missing from the status table.
const DefaultErrorMessage = "Generic Error"

var statusTable = map[int]statusClass{
	http.StatusNotFound:            {KindNotFound, "Not found"},
	http.StatusUnauthorized:        {KindUnauthorized, "Unauthorized"},
	http.StatusForbidden:           {KindForbidden, "Not enough privileges to access the requested resource"},
	http.StatusUnprocessableEntity: {KindValidation, "Validation errors"},
	http.StatusBadRequest:          {KindBadRequest, "Bad request"},
	http.StatusTooManyRequests:     {KindTooManyRequests, "Too many requests"},
	http.StatusInternalServerError: {KindServerError, "Internal server error"},
	http.StatusBadGateway:          {KindBadGateway, "Bad gateway"},
	http.StatusServiceUnavailable:  {KindServiceUnavailable, "Service unavailable"},
	http.StatusGatewayTimeout:      {KindGatewayTimeout, "Gateway timeout"},
}

// Sentinels matched by APIError.Is, one per kind.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrValidation         = errors.New("validation errors")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrServerError        = errors.New("internal server error")
	ErrBadGateway         = errors.New("bad gateway")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrGatewayTimeout     = errors.New("gateway timeout")
)

var kindSentinels = map[ErrorKind]error{
	KindNotFound:           ErrNotFound,
	KindUnauthorized:       ErrUnauthorized,
	KindForbidden:          ErrForbidden,
	KindBadRequest:         ErrBadRequest,
	KindValidation:         ErrValidation,
	KindTooManyRequests:    ErrTooManyRequests,
	KindServerError:        ErrServerError,
	KindBadGateway:         ErrBadGateway,
	KindServiceUnavailable: ErrServiceUnavailable,
	KindGatewayTimeout:     ErrGatewayTimeout,
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrBaseURLRequired    = errors.New("base URL is required")
	ErrIDRequired         = errors.New("id is required")
	ErrModelKeyRequired   = errors.New("model key is required")
	ErrFolderPathRequired = errors.New("folder path is required")
	ErrMissingURLSegment  = errors.New("missing URL segment")
	ErrMalformedPath      = errors.New("malformed path template")
)

// APIError is returned when the Atlas API answers with any status other than 200.
type APIError struct {
	Kind       ErrorKind       `json:"kind"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Errors     json.RawMessage `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// Is reports whether target is the sentinel of the error's kind.
func (e *APIError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]

	return ok && target == sentinel
}

// NewAPIError classifies a failed response. The body is parsed as a JSON
// object carrying optional "message" and "errors" members; anything else is
// treated as an empty object. It never returns nil.
func NewAPIError(statusCode int, body []byte) *APIError {
	class, known := statusTable[statusCode]
	if !known {
		class = statusClass{kind: KindUnknown, message: DefaultErrorMessage}
	}

	apiErr := &APIError{
		Kind:       class.kind,
		StatusCode: statusCode,
		Message:    class.message,
	}

	payload := parseErrorBody(body)

	if message, ok := payload["message"]; ok {
		var text string

		err := jsoniter.Unmarshal(message, &text)
		if err == nil && text != "" {
			apiErr.Message = text
		}
	}

	if detail, ok := payload["errors"]; ok && !isJSONNull(detail) {
		apiErr.Errors = detail
	}

	return apiErr
}

func parseErrorBody(body []byte) map[string]json.RawMessage {
	payload := map[string]json.RawMessage{}
	if len(body) == 0 {
		return payload
	}

	err := jsoniter.Unmarshal(body, &payload)
	if err != nil {
		return map[string]json.RawMessage{}
	}

	return payload
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// TransportError is returned when no response was received: connection
// failures, timeouts and context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body does not match the expected
// shape. It indicates a client/server contract mismatch.
type DecodeError struct {
	Target string
	Body   string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response into %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts the APIError from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasKind(err, KindUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasKind(err, KindForbidden)
}

// IsValidation checks if the error carries validation errors.
func IsValidation(err error) bool {
	return hasKind(err, KindValidation)
}

// IsTooManyRequests checks if the error is a rate limit error.
func IsTooManyRequests(err error) bool {
	return hasKind(err, KindTooManyRequests)
}

// IsServerError checks if the error came from a 5xx response.
func IsServerError(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}

	switch apiErr.Kind {
	case KindServerError, KindBadGateway, KindServiceUnavailable, KindGatewayTimeout:
		return true
	default:
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
}

// IsTransport checks if the request failed before a response was received.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Kind == kind
}
