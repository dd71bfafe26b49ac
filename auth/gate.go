package auth

import (
	"context"
	"errors"
	"sync"
)

// ErrSignInPending is returned when a credential submission arrives while a
// previous one is still outstanding.
var ErrSignInPending = errors.New("a sign-in attempt is already in progress")

// Gate decides whether the admin panel is open. It starts Locked on every
// process start and is never persisted. Any authenticated identity unlocks it;
// there is no role check, matching the reference behavior.
type Gate struct {
	mu        sync.Mutex
	unlocked  bool
	signingIn bool
	provider  IdentityProvider
}

func NewGate(provider IdentityProvider) *Gate {
	return &Gate{provider: provider}
}

// Enter handles an admin-entry request. With no provider configured it
// unlocks directly (offline policy). Otherwise it unlocks when a session is
// already active; a false result means credentials are required.
func (g *Gate) Enter(ctx context.Context) bool {
	g.mu.Lock()
	if g.unlocked {
		g.mu.Unlock()
		return true
	}
	provider := g.provider
	g.mu.Unlock()

	if provider == nil || provider.IsAuthenticated(ctx) {
		g.unlock()
		return true
	}
	return false
}

// Login handles a credential submission. A provider error keeps the gate
// locked and is surfaced verbatim. With no provider configured the submission
// is accepted unconditionally.
func (g *Gate) Login(ctx context.Context, email, password string) error {
	g.mu.Lock()
	if g.unlocked {
		g.mu.Unlock()
		return nil
	}
	if g.signingIn {
		g.mu.Unlock()
		return ErrSignInPending
	}
	g.signingIn = true
	provider := g.provider
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.signingIn = false
		g.mu.Unlock()
	}()

	if provider == nil {
		g.unlock()
		return nil
	}

	if _, err := provider.SignIn(ctx, email, password); err != nil {
		return err
	}
	g.unlock()
	return nil
}

// Logout delegates to the provider best-effort and locks the gate regardless
// of the provider's own outcome.
func (g *Gate) Logout(ctx context.Context) {
	g.mu.Lock()
	provider := g.provider
	g.mu.Unlock()

	if provider != nil {
		provider.SignOut(ctx)
	}

	g.mu.Lock()
	g.unlocked = false
	g.mu.Unlock()
}

func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}

func (g *Gate) unlock() {
	g.mu.Lock()
	g.unlocked = true
	g.mu.Unlock()
}
