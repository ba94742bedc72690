package domain

// AuthMethod is how a connector authenticates against its upstream.
type AuthMethod string

const (
	// AuthMethodNone sends requests without credentials.
	AuthMethodNone AuthMethod = "none"

	// AuthMethodPAT sends a static bearer token.
	AuthMethodPAT AuthMethod = "pat"

	// AuthMethodAPIKey sends an API key as a query parameter.
	AuthMethodAPIKey AuthMethod = "api_key"
)
