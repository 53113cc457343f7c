package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestLoginToken_RoundTrip(t *testing.T) {
	token, err := GenerateLoginToken(123, "alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken error: %v", err)
	}
	if claims.ID != 123 || claims.Email != "alice@example.com" || claims.Type != "login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseLoginToken_RejectsWrongType(t *testing.T) {
	claims := LoginClaims{
		ID:   1,
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected error for wrong token type")
	}
}

func TestParseLoginToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := LoginClaims{ID: 1, Type: "login"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected error for unsigned token")
	}
}

func TestParseLoginToken_Expired(t *testing.T) {
	token, err := GenerateLoginToken(1, "alice@example.com", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	_, err = ParseLoginToken(token)
	if err == nil {
		t.Fatalf("expected expired token error")
	}
}
