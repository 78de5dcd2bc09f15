package auth

import (
	"context"
	"time"

	"github.com/fimfic-io/fimapi/pkg/fimapi"
)

// StaticTokenManager serves a pre-obtained token. The token is never
// validated; an invalid one surfaces as Forbidden/InvalidToken errors when
// first used.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager wraps an existing access token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the wrapped token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

// RefreshToken fails: a static token has no credentials behind it.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return fimapi.ErrStaticTokenCannotRefresh
}

// SetToken replaces the wrapped token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}
