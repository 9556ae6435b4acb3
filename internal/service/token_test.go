package service

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	uid, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if uid != "user-1" {
		t.Fatalf("expected subject user-1, got %q", uid)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	issuer := &TokenManager{secret: []byte("test-secret"), ttl: -time.Hour}
	token, err := issuer.Issue("user-2")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	m := NewTokenManager("test-secret")
	if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got: %v", err)
	}
}

func TestTokenManager_WrongKey(t *testing.T) {
	token, err := NewTokenManager("other-secret").Issue("user-3")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	m := NewTokenManager("test-secret")
	if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got: %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("test-secret")
	if _, err := m.Parse("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got: %v", err)
	}
}

func TestTokenManager_UnexpectedAlg(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}

	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "user-4",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	m := NewTokenManager("test-secret")
	if _, err := m.Parse(tokenStr); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for RS256 token, got: %v", err)
	}
}

func TestTokenManager_EmptySubject(t *testing.T) {
	now := time.Now()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	tokenStr, err := tk.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	m := NewTokenManager("test-secret")
	if _, err := m.Parse(tokenStr); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty subject, got: %v", err)
	}
}
