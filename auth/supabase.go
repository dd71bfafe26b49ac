package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// SupabaseProvider talks to a Supabase GoTrue auth endpoint. It keeps the
// access token of the current session in memory for the process lifetime.
type SupabaseProvider struct {
	baseURL string
	anonKey string
	client  *http.Client

	mu          sync.Mutex
	accessToken string
}

// NewSupabaseProvider returns nil when url or anonKey is unset, which the
// gate treats as the collaborator being absent.
func NewSupabaseProvider(url, anonKey string) *SupabaseProvider {
	if url == "" || anonKey == "" {
		return nil
	}
	return &SupabaseProvider{
		baseURL: strings.TrimRight(url, "/"),
		anonKey: anonKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	User        supabaseUser `json:"user"`
}

type supabaseError struct {
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e supabaseError) text() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	}
	return "authentication failed"
}

func (p *SupabaseProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/auth/v1/token?grant_type=password", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.anonKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr supabaseError
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, errors.New(apiErr.text())
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("unexpected auth response: %w", err)
	}

	p.mu.Lock()
	p.accessToken = token.AccessToken
	p.mu.Unlock()

	return &Identity{ID: token.User.ID, Email: token.User.Email}, nil
}

func (p *SupabaseProvider) CurrentIdentity(ctx context.Context) (*Identity, error) {
	p.mu.Lock()
	accessToken := p.accessToken
	p.mu.Unlock()

	if accessToken == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", p.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var user supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &Identity{ID: user.ID, Email: user.Email}, nil
}

func (p *SupabaseProvider) IsAuthenticated(ctx context.Context) bool {
	identity, err := p.CurrentIdentity(ctx)
	return err == nil && identity != nil
}

func (p *SupabaseProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	accessToken := p.accessToken
	p.accessToken = ""
	p.mu.Unlock()

	if accessToken == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", p.anonKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
