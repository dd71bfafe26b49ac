package utils_test

import (
	"testing"
	"time"

	"cafeteria-yv/utils"
)

func TestToken_RoundTrip(t *testing.T) {
	token, err := utils.GenerateToken("admin@cafe.co", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := utils.ValidateToken(token, "secret")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "admin@cafe.co" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	token, _ := utils.GenerateToken("admin@cafe.co", "secret", time.Hour)

	if _, err := utils.ValidateToken(token, "other"); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestToken_Expired(t *testing.T) {
	token, _ := utils.GenerateToken("admin@cafe.co", "secret", -time.Minute)

	if _, err := utils.ValidateToken(token, "secret"); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}
