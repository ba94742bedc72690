// Package auth provides TokenProvider implementations for connectors.
package auth

import (
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
)

// NewTokenProvider returns a StaticTokenProvider for a non-empty token,
// or a NullTokenProvider when no credential is configured.
func NewTokenProvider(token string) driven.TokenProvider {
	if token == "" {
		return NewNullTokenProvider()
	}
	return NewStaticTokenProvider(token)
}
