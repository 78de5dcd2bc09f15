package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fimfic-io/fimapi/internal/constants"
	"github.com/fimfic-io/fimapi/pkg/fimapi"
)

// Static errors for err113 compliance.
var (
	ErrNoClientCredentials = errors.New("no client credentials configured")
)

// OAuth2Config configures the client_credentials exchange.
type OAuth2Config struct {
	// TokenURL is the token endpoint. Defaults to the fixed FimFiction
	// endpoint when empty.
	TokenURL     string
	ClientID     string
	ClientSecret string

	// HTTPClient optionally overrides the transport used for the exchange.
	HTTPClient *http.Client
}

// OAuth2TokenManager obtains tokens via the OAuth2 client_credentials grant.
// The credentials are sent form-encoded in the request body, which is what
// the upstream token endpoint expects.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
	mu         sync.Mutex
}

// NewOAuth2TokenManager creates a token manager for the given credentials.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.ShortHTTPTimeout}
	}

	return &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}
}

// GetToken returns a valid access token, exchanging credentials if the stored
// token is missing or expired.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return "", err
	}

	m.store.Set(token)

	return token.AccessToken, nil
}

// RefreshToken discards the stored token and exchanges credentials again.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken installs a token obtained elsewhere.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context) (*Token, error) {
	if m.config.ClientID == "" || m.config.ClientSecret == "" {
		return nil, ErrNoClientCredentials
	}

	tokenURL := m.config.TokenURL
	if tokenURL == "" {
		tokenURL = constants.TokenEndpoint
	}

	form := url.Values{}
	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	err = fimapi.ErrorFromResponse(resp.StatusCode, resp.Status, body)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s", fimapi.ErrMalformedTokenResponse, string(body))
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
