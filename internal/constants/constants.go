package constants

import "time"

// Upstream endpoints. The API base and token endpoint are fixed parts of the
// FimFiction service.
const (
	// APIBaseURL is the base URL for all FimFiction v2 API requests.
	APIBaseURL = "https://www.fimfiction.net/api/v2"

	// TokenEndpoint is the OAuth2 token exchange endpoint.
	TokenEndpoint = APIBaseURL + "/token"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as the token exchange.
	ShortHTTPTimeout = 10 * time.Second
)

// Token handling.
const (
	// TokenExpiryBuffer is subtracted from a token's expiry when deciding
	// whether it is still usable, so a token is refreshed before it lapses
	// mid-request.
	TokenExpiryBuffer = 30 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
