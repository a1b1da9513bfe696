// Package utils holds small helpers shared by the ledger server and client:
// request context values, upload HMACs, JSON bodies, resty clients, session
// tokens and trace ids.
package utils

import "context"

type contextKey string

func (c contextKey) String() string { return string(c) }

// AddressCtxKey holds the wallet address proven by the request's bearer token.
var AddressCtxKey = contextKey("address")

// WithAddress stores the authenticated wallet address in ctx.
func WithAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, AddressCtxKey, address)
}

// GetAddressFromContext returns the address set by WithAddress. ok is false
// when none or an empty one was stored.
func GetAddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(AddressCtxKey).(string)
	return address, ok && address != ""
}
