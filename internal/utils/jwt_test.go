package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"

	token, err := GenerateJWTToken(issuer, testAddress, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != testAddress {
		t.Errorf("expected subject %s, got %s", testAddress, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		address  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testAddress, time.Hour, "key"},
		{"empty address", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", testAddress, 0, "key"},
		{"negative duration", "iss", testAddress, -time.Minute, "key"},
		{"not an address", "iss", "alice", time.Hour, "key"},
		{"empty key", "iss", testAddress, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.address, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testAddress, 5*time.Minute, "secret-key")

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Address != testAddress {
		t.Errorf("expected address %s, got %s", testAddress, parsedToken.Address)
	}
	if parsedToken.String() != genToken.SignedString {
		t.Error("expected parsed token to keep its compact form")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testAddress, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	claims := jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   testAddress,
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsNonAddressSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "test-issuer")
	if !errors.Is(err, ErrTokenSubject) {
		t.Errorf("expected ErrTokenSubject, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RequiresExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "test-issuer", Subject: testAddress}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err = ValidateAndParseJWTToken(signed, "key", "test-issuer"); err == nil {
		t.Error("expected error for token without exp")
	}
}

func TestGenerateJWTToken_UniqueIDs(t *testing.T) {
	a, err := GenerateJWTToken("iss", testAddress, time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateJWTToken("iss", testAddress, time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("expected distinct non-empty jti, got %q and %q", a.ID, b.ID)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", testAddress, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "  bearer abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBearerToken(%q): expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
		}
	}
}
