package driven

import "context"

// TokenProvider supplies an API token for authenticated sources.
// The CLI implements it with a config lookup falling back to a terminal
// prompt; tests use a static value.
type TokenProvider interface {
	// GetToken returns the token, or "" when requests should go
	// unauthenticated.
	GetToken(ctx context.Context) (string, error)
}
