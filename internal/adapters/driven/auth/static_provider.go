package auth

import (
	"context"
	"errors"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// ErrEmptyToken is returned when a static provider holds no token.
var ErrEmptyToken = errors.New("auth: token is empty")

// StaticTokenProvider provides a Personal Access Token loaded at startup.
// PATs don't expire and don't require refresh.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a token provider for PAT-based authentication.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the PAT token.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", ErrEmptyToken
	}
	return p.token, nil
}

// AuthMethod returns AuthMethodPAT.
func (p *StaticTokenProvider) AuthMethod() domain.AuthMethod {
	return domain.AuthMethodPAT
}

// IsAuthenticated returns true if a token is present.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
