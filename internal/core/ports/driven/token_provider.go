package driven

import (
	"context"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// TokenProvider provides access tokens for authenticated API calls.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns empty string for no-auth connectors.
	GetToken(ctx context.Context) (string, error)

	// AuthMethod returns the authentication method (pat, api_key, none).
	AuthMethod() domain.AuthMethod

	// IsAuthenticated returns true if valid authentication is available.
	// Always true for no-auth connectors (NullTokenProvider).
	IsAuthenticated() bool
}
