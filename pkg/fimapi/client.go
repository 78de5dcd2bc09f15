package fimapi

import (
	"net/http"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a fimclient.Client.
//
// # Authentication precedence
//
//  1. AccessToken: if set, it is used directly as a static Bearer token with
//     no validation; an invalid token surfaces as Forbidden/InvalidToken
//     errors on the first authenticated call.
//  2. ClientID/ClientSecret: uses the OAuth2 client_credentials grant against
//     the FimFiction token endpoint. The exchange happens once during
//     construction.
//  3. Neither: construction fails with ErrNoCredentials.
type Config struct {
	// ClientID is the OAuth2 client ID for the client_credentials grant.
	ClientID string
	// ClientSecret is the OAuth2 client secret used with ClientID.
	ClientSecret string
	// AccessToken, if set, is used directly as a Bearer token. A leading
	// "Bearer " prefix is accepted and stripped.
	AccessToken string
	// TokenURL overrides the token endpoint. The upstream endpoint is fixed;
	// this exists so tests can point the exchange at a local server.
	TokenURL string
	// BaseURL overrides the API base URL. Like TokenURL it exists for tests;
	// the upstream base is fixed.
	BaseURL string

	// HTTPClient optionally supplies the underlying transport. When nil a
	// default client with DefaultHTTPTimeout is used.
	HTTPClient *http.Client
	// RetryMax is the maximum number of transport-level retries for 5xx and
	// 429 responses. Zero means the transport never retries; the library
	// itself never retries regardless.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
