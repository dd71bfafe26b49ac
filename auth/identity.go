// Package auth holds the admin session gate and the identity providers it
// delegates to. The provider is an opaque, fully trusted collaborator; the
// gate only cares about its four-operation contract.
package auth

import "context"

type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// IdentityProvider is the external authentication contract. All operations
// may take arbitrarily long; callers pass a context. A nil provider means the
// collaborator is not configured (offline/demo mode).
type IdentityProvider interface {
	// SignIn authenticates with email and password. A non-nil error carries a
	// message fit to surface verbatim to the user.
	SignIn(ctx context.Context, email, password string) (*Identity, error)

	// CurrentIdentity returns the identity of the active session, or nil when
	// no session is active.
	CurrentIdentity(ctx context.Context) (*Identity, error)

	// IsAuthenticated reports whether an authenticated identity is present.
	IsAuthenticated(ctx context.Context) bool

	// SignOut ends the active session. Best-effort.
	SignOut(ctx context.Context) error
}
