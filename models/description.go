// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyScheme selects the message an encryption key is derived from.
type KeyScheme string

const (
	// KeySchemePersonalSign signs the plain string "Encrypt PDF for <identifier>".
	KeySchemePersonalSign KeyScheme = "personal-sign"

	// KeySchemeTypedDataV1 signs EIP-712 typed data binding owner, identifier
	// and content identifier.
	KeySchemeTypedDataV1 KeyScheme = "typed-data-v1"
)

// DefaultKeyScheme is used for new agreements when the caller does not pick one.
const DefaultKeyScheme = KeySchemeTypedDataV1

// DescriptionVersion is the current version of [AgreementDescription].
const DescriptionVersion = 1

// Valid reports whether s is a known scheme.
func (s KeyScheme) Valid() bool {
	return s == KeySchemePersonalSign || s == KeySchemeTypedDataV1
}

// SlotDescription is the caller-facing description of a slot. Optional
// fields are nil when omitted and get defaults at construction.
type SlotDescription struct {
	Identifier   string  `json:"identifier"`
	Signer       *string `json:"signer,omitempty"`
	AllowedToUse *uint64 `json:"allowedToUse,omitempty"`
}

// AgreementDescription is the JSON document pinned next to the encrypted
// agreement. It carries the slot descriptions and the key scheme a reader
// needs to re-derive the encryption key.
type AgreementDescription struct {
	Version    int               `json:"version"`
	Identifier string            `json:"identifier"`
	KeyScheme  KeyScheme         `json:"keyScheme,omitempty"`
	ChainID    int64             `json:"chainId,omitempty"`
	Slots      []SlotDescription `json:"slots"`
}

// Scheme returns the stored key scheme. Documents written before the field
// existed use plain string signing.
func (d AgreementDescription) Scheme() KeyScheme {
	if d.KeyScheme == "" {
		return KeySchemePersonalSign
	}
	return d.KeyScheme
}
