package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Generate("sid-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.SessionID != "sid-123" {
		t.Fatalf("expected session id round trip, got %q", claims.SessionID)
	}
}

func TestTokenRejectsEmptySessionID(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	if _, err := svc.Generate(""); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate("sid-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.Validate(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Millisecond)
	token, err := svc.Generate("sid-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := svc.Validate(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	if _, err := svc.Validate("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
