package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"swiftdrop/internal/session"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestParse_ExtractsClaimsWithoutVerification(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	tok := mintToken(t, jwt.MapClaims{
		"user_id": 7,
		"email":   "a@b.c",
		"role":    "customer",
		"exp":     exp.Unix(),
	})

	c, err := session.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UserID != 7 || c.Email != "a@b.c" || c.Role != "customer" {
		t.Errorf("claims = %+v", c)
	}
	if !c.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", c.ExpiresAt, exp)
	}
}

func TestParse_ExpiredTokenStillParses(t *testing.T) {
	// Expiry is never enforced client-side; an expired token must still
	// yield claims for display.
	tok := mintToken(t, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	if _, err := session.Parse(tok); err != nil {
		t.Fatalf("expired token should parse, got %v", err)
	}
}

func TestParse_GarbageFails(t *testing.T) {
	if _, err := session.Parse("not-a-jwt"); err == nil {
		t.Fatal("expected an error for a non-JWT token")
	}
}
