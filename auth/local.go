package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"cafeteria-yv/utils"
)

// LocalProvider authenticates against a single admin account configured by
// email and argon2 password hash, issuing a JWT as the session token. It
// implements the same contract as the remote provider so the gate cannot tell
// them apart.
type LocalProvider struct {
	email        string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration

	mu           sync.Mutex
	sessionToken string
}

// NewLocalProvider returns nil when no admin account is configured.
func NewLocalProvider(email, passwordHash, jwtSecret, jwtExpiry string) *LocalProvider {
	if email == "" || passwordHash == "" {
		return nil
	}
	expiry, err := time.ParseDuration(jwtExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}
	return &LocalProvider{
		email:        email,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		jwtExpiry:    expiry,
	}
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	ok, err := utils.VerifyPassword(p.passwordHash, password)
	if err != nil || !ok || email != p.email {
		return nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(email, p.jwtSecret, p.jwtExpiry)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.sessionToken = token
	p.mu.Unlock()

	return &Identity{ID: email, Email: email}, nil
}

func (p *LocalProvider) CurrentIdentity(ctx context.Context) (*Identity, error) {
	p.mu.Lock()
	token := p.sessionToken
	p.mu.Unlock()

	if token == "" {
		return nil, nil
	}

	claims, err := utils.ValidateToken(token, p.jwtSecret)
	if err != nil {
		return nil, nil
	}
	return &Identity{ID: claims.Email, Email: claims.Email}, nil
}

func (p *LocalProvider) IsAuthenticated(ctx context.Context) bool {
	identity, _ := p.CurrentIdentity(ctx)
	return identity != nil
}

func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	p.sessionToken = ""
	p.mu.Unlock()
	return nil
}
