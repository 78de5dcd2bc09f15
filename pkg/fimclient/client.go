package fimclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fimfic-io/fimapi/internal/auth"
	"github.com/fimfic-io/fimapi/internal/constants"
	internalhttp "github.com/fimfic-io/fimapi/internal/http"
	"github.com/fimfic-io/fimapi/pkg/fimapi"
)

// Client is an authenticated FimFiction API client. It is immutable after
// construction and safe to share across goroutines.
type Client struct {
	httpClient   *internalhttp.Client
	tokenManager auth.TokenManager
}

// New creates a client from config. With an AccessToken the client is ready
// immediately and the token is not validated; with ClientID/ClientSecret one
// client_credentials exchange is performed during construction. Without
// either, New fails with fimapi.ErrNoCredentials.
func New(ctx context.Context, config *fimapi.Config) (*Client, error) {
	if config == nil {
		return nil, fimapi.ErrConfigRequired
	}

	tokenManager, err := createTokenManager(ctx, config)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.APIBaseURL
	}

	opts := optionsFromConfig(config)

	return &Client{
		httpClient:   internalhttp.NewClient(baseURL, tokenManager, opts...),
		tokenManager: tokenManager,
	}, nil
}

// NewWithClientCredentials creates a client via the OAuth2 client_credentials
// grant. The token exchange happens before this returns.
func NewWithClientCredentials(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	return New(ctx, &fimapi.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewWithToken creates a client around a pre-obtained access token. No
// network call is made and the token is not validated; an invalid token
// surfaces as Forbidden/InvalidToken errors on the first call.
func NewWithToken(token string) (*Client, error) {
	return New(context.Background(), &fimapi.Config{AccessToken: token})
}

func createTokenManager(ctx context.Context, config *fimapi.Config) (auth.TokenManager, error) {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(strings.TrimPrefix(config.AccessToken, "Bearer ")), nil
	}

	if config.ClientID != "" && config.ClientSecret != "" {
		manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			TokenURL:     config.TokenURL,
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			HTTPClient:   config.HTTPClient,
		})

		// The one network round trip of construction.
		_, err := manager.GetToken(ctx)
		if err != nil {
			return nil, err
		}

		return manager, nil
	}

	return nil, fimapi.ErrNoCredentials
}

func optionsFromConfig(config *fimapi.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.RetryMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		opts = append(opts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	return opts
}

// BearerToken returns the client's credential in the form attached to the
// Authorization header ("Bearer <token>"), for reuse or persistence.
func (c *Client) BearerToken(ctx context.Context) (string, error) {
	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}

	return "Bearer " + token, nil
}

// Get performs an authenticated GET request and, when out is non-nil, decodes
// the success payload into it. API errors come back as the typed taxonomy in
// pkg/fimapi.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return err
	}

	return decodeInto(resp.Body, out)
}

// Post performs an authenticated POST request with a JSON body and, when out
// is non-nil, decodes the success payload into it.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return err
	}

	return decodeInto(resp.Body, out)
}

// Delete performs an authenticated DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.httpClient.Delete(ctx, path)

	return err
}

func decodeInto(body []byte, out interface{}) error {
	if out == nil {
		return nil
	}

	err := json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}
