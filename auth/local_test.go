package auth_test

import (
	"context"
	"testing"

	"cafeteria-yv/auth"
	"cafeteria-yv/utils"
)

func newLocalProvider(t *testing.T) *auth.LocalProvider {
	t.Helper()
	hash, err := utils.HashPassword("secreto")
	if err != nil {
		t.Fatal(err)
	}
	return auth.NewLocalProvider("admin@cafe.co", hash, "test-secret", "1h")
}

func TestNewLocalProvider_UnconfiguredIsNil(t *testing.T) {
	if p := auth.NewLocalProvider("", "", "secret", "1h"); p != nil {
		t.Error("expected nil provider without an admin account")
	}
}

func TestLocalProvider_SignInLifecycle(t *testing.T) {
	p := newLocalProvider(t)
	ctx := context.Background()

	if p.IsAuthenticated(ctx) {
		t.Error("should not be authenticated before sign-in")
	}

	identity, err := p.SignIn(ctx, "admin@cafe.co", "secreto")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if identity.Email != "admin@cafe.co" {
		t.Errorf("identity email = %q", identity.Email)
	}
	if !p.IsAuthenticated(ctx) {
		t.Error("should be authenticated after sign-in")
	}

	p.SignOut(ctx)
	if p.IsAuthenticated(ctx) {
		t.Error("should not be authenticated after sign-out")
	}
}

func TestLocalProvider_Rejections(t *testing.T) {
	p := newLocalProvider(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong_password", email: "admin@cafe.co", password: "mal"},
		{name: "wrong_email", email: "otro@cafe.co", password: "secreto"},
		{name: "empty", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.SignIn(ctx, tt.email, tt.password); err == nil {
				t.Error("expected sign-in to fail")
			}
		})
	}
	if p.IsAuthenticated(ctx) {
		t.Error("failed attempts must not create a session")
	}
}
