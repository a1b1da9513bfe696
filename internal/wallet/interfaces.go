// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package wallet holds the signing capability the agreement protocol depends
// on. The protocol never sees key material; it asks a [Signer] for
// signatures over key messages and login messages.
package wallet

import (
	"context"

	"github.com/MKhiriev/go-agreement-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_mock.go -package=mock

// Signer produces 65-byte secp256k1 signatures (r || s || v, v in {27, 28}).
// Signatures are deterministic: the same message always yields the same
// bytes, which is what makes derived document keys reproducible.
type Signer interface {
	// Sign signs message with the personal-message prefix.
	Sign(ctx context.Context, message []byte) ([]byte, error)

	// SignTypedData signs an EIP-712 payload.
	SignTypedData(ctx context.Context, data models.TypedData) ([]byte, error)

	// Address returns the 0x-prefixed checksummed address of the signer.
	Address() string
}
