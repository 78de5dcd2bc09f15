package auth

import (
	"context"
	"sync"
	"time"

	"github.com/fimfic-io/fimapi/internal/constants"
)

// TokenManager manages the access token attached to authenticated requests.
type TokenManager interface {
	// GetToken returns a valid access token, obtaining one if necessary.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken forces a new token to be obtained.
	RefreshToken(ctx context.Context) error
	// SetToken installs a token obtained elsewhere.
	SetToken(token string, expiresAt time.Time)
}

// Token represents an OAuth2 access token as returned by the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`

	// ExpiresAt is computed from ExpiresIn when the token is received. Zero
	// means the token does not expire.
	ExpiresAt time.Time `json:"-"`
}

// Valid reports whether the token can still be used. Tokens within
// TokenExpiryBuffer of their expiry count as invalid so they are replaced
// before lapsing mid-request.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpiryBuffer).Before(t.ExpiresAt)
}

// TokenStore holds the current token. Safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
