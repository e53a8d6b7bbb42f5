package http

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/atlas-cms/atlas-go/internal/constants"
)

// clientOS is resolved once per process.
var clientOS = osLabel(runtime.GOOS)

func osLabel(goos string) string {
	switch goos {
	case "windows":
		return constants.OSWindows
	case "darwin", "ios":
		return constants.OSMacOS
	case "linux", "android":
		return constants.OSLinux
	default:
		return constants.OSDefault
	}
}

// SDKHeaderValue returns the value of the SDK identification header.
func SDKHeaderValue() string {
	return fmt.Sprintf("%s/%s; OS %s;", constants.SDKName, constants.Version, clientOS)
}

// composeHeaders builds the headers common to every request. token wins over
// apiKey; with neither, no Authorization header is sent.
func composeHeaders(apiKey, token, userAgent string) http.Header {
	headers := make(http.Header)

	credential := token
	if credential == "" {
		credential = apiKey
	}

	if credential != "" {
		headers.Set(constants.HeaderAuthorization, "Bearer "+credential)
	}

	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	headers.Set(constants.HeaderSDK, SDKHeaderValue())
	headers.Set(constants.HeaderUserAgent, userAgent)
	headers.Set(constants.HeaderAccept, constants.ContentTypeJSON)

	return headers
}
