package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	username := "admin"

	tok, err := GenerateToken(username, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := GetUsernameFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetUsernameFromToken error: %v", err)
	}
	if got != username {
		t.Fatalf("username mismatch: got %q want %q", got, username)
	}
}

func TestGetUsernameFromToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("admin", []byte("secret"), -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = GetUsernameFromToken(tok, []byte("secret")); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestGetUsernameFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("admin", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err = GetUsernameFromToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestGetUsernameFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := GetUsernameFromToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
