package models

import "github.com/golang-jwt/jwt/v5"

// Token is a ledger session token. Its subject is the wallet address that
// proved control of its key at login.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`
	// Address mirrors the subject claim.
	Address string `json:"-"`
}

// String returns the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
