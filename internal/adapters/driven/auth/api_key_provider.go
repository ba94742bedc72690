package auth

import (
	"context"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
)

// Ensure APIKeyProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*APIKeyProvider)(nil)

// APIKeyProvider supplies a static API key, sent as a query parameter
// rather than a bearer token.
type APIKeyProvider struct {
	key string
}

// NewAPIKeyProvider creates a provider for API-key authentication.
func NewAPIKeyProvider(key string) *APIKeyProvider {
	return &APIKeyProvider{key: key}
}

// GetToken returns the API key.
func (p *APIKeyProvider) GetToken(_ context.Context) (string, error) {
	if p.key == "" {
		return "", ErrEmptyToken
	}
	return p.key, nil
}

// AuthMethod returns AuthMethodAPIKey.
func (p *APIKeyProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodAPIKey
}

// IsAuthenticated returns true if a key is present.
func (p *APIKeyProvider) IsAuthenticated() bool {
	return p.key != ""
}
