package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	tok, err := NewAccessToken(secret, 42, "Somsri", true, 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}
	if until := time.Until(tok.Exp); until < 14*time.Minute || until > 16*time.Minute {
		t.Errorf("expiry %v not ~15m away", tok.Exp)
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Fatalf("unexpected signing method %v", tk.Method)
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse issued token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if name, _ := claims["name"].(string); name != "Somsri" {
		t.Errorf("name = %v, want Somsri", claims["name"])
	}
	if admin, _ := claims["admin"].(bool); !admin {
		t.Errorf("admin = %v, want true", claims["admin"])
	}
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("right-secret", 1, "A", false, 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && parsed.Valid {
		t.Error("token validated with the wrong secret")
	}
}
