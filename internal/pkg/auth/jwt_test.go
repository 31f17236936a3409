package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/alumlink/alumlink/internal/pkg/auth"
)

func newService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService(-time.Minute)

	token, _, err := svc.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, auth.ErrExpiredToken) {
		t.Errorf("expired token error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newService(time.Hour).GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := auth.NewJWTService(auth.JWTConfig{SecretKey: "different", TokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret should not validate")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newService(time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token should not validate")
	}
}

func TestExtractBearerToken(t *testing.T) {
	got, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || got != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken(Bearer ...) = (%q, %v)", got, err)
	}

	// Bare tokens pass through unchanged.
	got, err = auth.ExtractBearerToken("abc.def.ghi")
	if err != nil || got != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken(bare) = (%q, %v)", got, err)
	}

	if _, err := auth.ExtractBearerToken(""); err == nil {
		t.Error("empty header should error")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !auth.CheckPassword(hash, "secret123") {
		t.Error("CheckPassword rejected the correct password")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
