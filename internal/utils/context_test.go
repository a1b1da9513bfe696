// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAddressCtxKey(t *testing.T) {
	if AddressCtxKey.String() != "address" {
		t.Errorf("expected 'address', got '%s'", AddressCtxKey.String())
	}
}

func TestGetAddressFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    WithAddress(context.Background(), "0xabc"),
			want:   "0xabc",
			wantOK: true,
		},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), AddressCtxKey, 42)},
		{name: "empty", ctx: WithAddress(context.Background(), "")},
		{name: "raw key", ctx: context.WithValue(context.Background(), AddressCtxKey, "0xdef"), want: "0xdef", wantOK: true},
		{name: "different key", ctx: context.WithValue(context.Background(), contextKey("other"), "0xabc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetAddressFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("address = %q, want %q", got, tt.want)
			}
		})
	}
}
